package entities

import "fmt"

// Book is a catalog entry. ISBN is free-form and not unique: two books may
// share it, and it may be empty.
type Book struct {
	ID     uint   `gorm:"primaryKey" json:"-"` // row order for SQL-backed catalogs
	ISBN   string `gorm:"index;size:64" json:"isbn"`
	Title  string `gorm:"size:512" json:"title"`
	Author string `gorm:"size:256" json:"author"`
	Year   int    `json:"year"`
}

// NewBook creates a book. No field is validated.
func NewBook(isbn, title, author string, year int) Book {
	return Book{ISBN: isbn, Title: title, Author: author, Year: year}
}

// String renders the book as "[isbn] title - author (year)".
func (b Book) String() string {
	return fmt.Sprintf("[%s] %s - %s (%d)", b.ISBN, b.Title, b.Author, b.Year)
}
