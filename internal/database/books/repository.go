// Package books provides database operations for the catalog's books and loans.
//
// This package implements the catalog.Catalog interface on top of gorm.
//
// # Interface Implementation
//
//	var _ catalog.Catalog = (*Repository)(nil)
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.FindByIsbn("978-1")
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

// Repository handles all book and loan database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddBook inserts a copy of book as a new row. Duplicates are allowed.
func (r *Repository) AddBook(book *entities.Book) error {
	if book == nil {
		return catalog.ErrInvalidArgument
	}
	record := *book
	record.ID = 0
	return r.db.Create(&record).Error
}

// ListBooks retrieves all books in insertion order.
func (r *Repository) ListBooks() ([]entities.Book, error) {
	books := []entities.Book{}
	err := r.db.Order("id ASC").Find(&books).Error
	return books, err
}

func (r *Repository) HasBookWithIsbn(isbn string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Book{}).Where("isbn = ?", isbn).Count(&count).Error
	return count > 0, err
}

// HasBookWithTitle compares titles in Go so case folding matches the
// in-memory store; SQLite's LOWER only folds ASCII.
func (r *Repository) HasBookWithTitle(title string) (bool, error) {
	var titles []string
	if err := r.db.Model(&entities.Book{}).Pluck("title", &titles).Error; err != nil {
		return false, err
	}
	for _, t := range titles {
		if catalog.TitleMatches(entities.Book{Title: t}, title) {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) ClearBooks() error {
	return r.db.Where("1 = 1").Delete(&entities.Book{}).Error
}

// FindByIsbn retrieves the earliest added book with the ISBN, or nil.
func (r *Repository) FindByIsbn(isbn string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Where("isbn = ?", isbn).Order("id ASC").First(&book).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// FindByAuthor retrieves books whose author contains the query, ignoring case.
// Matching happens in Go so LIKE wildcards in the query stay literal.
func (r *Repository) FindByAuthor(author string) ([]entities.Book, error) {
	results := []entities.Book{}
	if author == "" {
		return results, nil
	}
	books, err := r.ListBooks()
	if err != nil {
		return nil, err
	}
	for _, b := range books {
		if catalog.AuthorMatches(b, author) {
			results = append(results, b)
		}
	}
	return results, nil
}
