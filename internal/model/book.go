package model

// Book is keyed by its client-supplied ISBN. All other columns are replaced
// together on update.
type Book struct {
	ISBN      string `json:"isbn" gorm:"column:isbn;primaryKey"`
	AmazonURL string `json:"amazon_url" gorm:"column:amazon_url;not null"`
	Author    string `json:"author" gorm:"not null"`
	Language  string `json:"language" gorm:"not null"`
	Pages     int    `json:"pages" gorm:"not null"`
	Publisher string `json:"publisher" gorm:"not null"`
	Title     string `json:"title" gorm:"not null;index"`
	Year      int    `json:"year" gorm:"not null"`
}

func (Book) TableName() string {
	return "books"
}
