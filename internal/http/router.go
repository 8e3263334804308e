package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	// "/api/loans/" must not be redirected onto "/api/loans".
	router.RedirectTrailingSlash = false
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(SecurityHeadersMiddleware())

	readOnly := NewReadOnlyMiddleware(cfg.ReadOnly)
	if readOnly.IsEnabled() {
		router.Use(readOnly.Handler())
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	books := NewBooksController(cfg.Catalog)
	loans := NewLoansController(cfg.Catalog)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Books API endpoints
	router.GET("/api/books", books.GetAllBooks)
	router.POST("/api/books", books.AddBook)
	router.DELETE("/api/books", books.ClearBooks)
	router.GET("/api/books/search", books.SearchByAuthor)
	router.GET("/api/books/lookup", books.GetBook)

	// Loans API endpoints
	router.GET("/api/loans", loans.GetAllLoans)
	router.POST("/api/loans", loans.Borrow)
	router.DELETE("/api/loans", loans.Return)
	router.DELETE("/api/loans/all", loans.ClearLoans)
	router.GET("/api/loans/lookup", loans.GetLoan)

	return router
}
