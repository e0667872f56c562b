package handler

import "github.com/snnyvrz/go-book-crud-gin/internal/model"

// BookRequest documents the request body. Handlers decode into a raw object
// so that every field can be type-checked and reported.
type BookRequest struct {
	ISBN      string `json:"isbn" example:"0691161518"`
	AmazonURL string `json:"amazon_url" example:"http://a.co/eobPtX2"`
	Author    string `json:"author" example:"Matthew Lane"`
	Language  string `json:"language" example:"english"`
	Pages     int    `json:"pages" example:"264"`
	Publisher string `json:"publisher" example:"Princeton University Press"`
	Title     string `json:"title" example:"Power-Up: Unlocking the Hidden Mathematics in Video Games"`
	Year      int    `json:"year" example:"2017"`
}

type BookResponse struct {
	Book model.Book `json:"book"`
}

type ListBooksResponse struct {
	Books []model.Book `json:"books"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Book deleted"`
}

// ErrorBody.Message is a string, or a list of strings for validation failures.
type ErrorBody struct {
	Message any `json:"message" swaggertype:"array,string"`
	Status  int `json:"status" example:"400"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}
