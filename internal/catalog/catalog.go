// Package catalog holds the library's record keeping: the books on the
// shelf and the loans currently out.
//
// # Backends
//
// Catalog is implemented by:
//
//   - Store: slices and maps in process memory (default)
//   - database/books.Repository: gorm over an in-memory SQLite database
//
// Both behave identically; catalogtest.Suite runs against each.
//
// # Semantics
//
// Nothing here enforces uniqueness. Two books may share an ISBN or a title,
// and loans are keyed by the raw ISBN string, so books with the same ISBN
// cannot be told apart when lending. Lookups by ISBN return the first book
// added. "Not found" is reported as a nil or false result, never as an error.
//
// # Usage
//
//	store := catalog.NewStore()
//	_ = store.AddBook(&entities.Book{ISBN: "978-1", Title: "Bible", Author: "Lenny", Year: 2025})
//	ok, _ := store.BorrowBook("978-1", "Roland")
//	name, returned, _ := store.ReturnBook("978-1")
package catalog

import "github.com/mrlokans/library/internal/entities"

// Catalog defines the record keeping operations on books and loans.
type Catalog interface {
	// AddBook appends a copy of book. A nil book fails with ErrInvalidArgument.
	AddBook(book *entities.Book) error
	// ListBooks returns a copy of all books in insertion order.
	ListBooks() ([]entities.Book, error)
	HasBookWithIsbn(isbn string) (bool, error)
	HasBookWithTitle(title string) (bool, error)
	ClearBooks() error

	// FindByIsbn returns the first book added with exactly this ISBN, or nil.
	FindByIsbn(isbn string) (*entities.Book, error)
	// FindByAuthor returns books whose author contains the query, ignoring
	// case. An empty query matches nothing.
	FindByAuthor(author string) ([]entities.Book, error)

	IsBorrowed(isbn string) (bool, error)
	// BorrowBook lends the book to borrower. It reports false when no book
	// has the ISBN or when the ISBN is already on loan.
	BorrowBook(isbn, borrower string) (bool, error)
	// ReturnBook ends the loan and reports who had the book.
	ReturnBook(isbn string) (string, bool, error)
	// GetBorrower returns the active loan for isbn, or nil.
	GetBorrower(isbn string) (*entities.Loan, error)
	// ListLoans returns a copy of the ISBN to loan mapping.
	ListLoans() (map[string]entities.Loan, error)
	ClearLoans() error
}
