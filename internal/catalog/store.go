package catalog

import (
	"maps"
	"slices"
	"sync"

	"github.com/mrlokans/library/internal/entities"
)

// Store is the in-memory Catalog. The zero value is not usable; call NewStore.
// All methods are safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	books []entities.Book
	loans map[string]entities.Loan
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		books: []entities.Book{},
		loans: make(map[string]entities.Loan),
	}
}

func (s *Store) AddBook(book *entities.Book) error {
	if book == nil {
		return ErrInvalidArgument
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = append(s.books, *book)
	return nil
}

func (s *Store) ListBooks() ([]entities.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.books), nil
}

func (s *Store) HasBookWithIsbn(isbn string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findByIsbn(isbn) != nil, nil
}

func (s *Store) HasBookWithTitle(title string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.books {
		if TitleMatches(b, title) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ClearBooks() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.books = []entities.Book{}
	return nil
}

func (s *Store) FindByIsbn(isbn string) (*entities.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	book := s.findByIsbn(isbn)
	if book == nil {
		return nil, nil
	}
	found := *book
	return &found, nil
}

// findByIsbn must be called with the lock held.
func (s *Store) findByIsbn(isbn string) *entities.Book {
	for i := range s.books {
		if s.books[i].ISBN == isbn {
			return &s.books[i]
		}
	}
	return nil
}

func (s *Store) FindByAuthor(author string) ([]entities.Book, error) {
	results := []entities.Book{}
	if author == "" {
		return results, nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.books {
		if AuthorMatches(b, author) {
			results = append(results, b)
		}
	}
	return results, nil
}

func (s *Store) IsBorrowed(isbn string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.loans[isbn]
	return ok, nil
}

func (s *Store) BorrowBook(isbn, borrower string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findByIsbn(isbn) == nil {
		return false, nil
	}
	if _, ok := s.loans[isbn]; ok {
		return false, nil
	}
	s.loans[isbn] = entities.Loan{ISBN: isbn, BorrowerName: borrower}
	return true, nil
}

func (s *Store) ReturnBook(isbn string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loan, ok := s.loans[isbn]
	if !ok {
		return "", false, nil
	}
	delete(s.loans, isbn)
	return loan.BorrowerName, true, nil
}

func (s *Store) GetBorrower(isbn string) (*entities.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	loan, ok := s.loans[isbn]
	if !ok {
		return nil, nil
	}
	return &loan, nil
}

func (s *Store) ListLoans() (map[string]entities.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.loans), nil
}

func (s *Store) ClearLoans() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.loans)
	return nil
}
