package main

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/go-book-crud-gin/internal/docs"
	"github.com/snnyvrz/go-book-crud-gin/internal/handler"
	"github.com/snnyvrz/go-book-crud-gin/internal/middleware"
	"github.com/snnyvrz/go-book-crud-gin/internal/repository"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func newRouter(database *gorm.DB, logger *slog.Logger, startTime time.Time) *gin.Engine {
	e := gin.Default()

	e.SetTrustedProxies([]string{
		"127.0.0.1",
		"::1",
	})

	e.Use(middleware.RequestID())

	healthHandler := handler.NewHealthHandler(database, startTime, appVersion)
	healthHandler.RegisterRoutes(e)

	bookHandler := handler.NewBookHandler(repository.NewGormBookRepository(database), logger)
	bookHandler.RegisterRoutes(&e.RouterGroup)

	docs.SwaggerInfo.BasePath = "/"
	e.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return e
}
