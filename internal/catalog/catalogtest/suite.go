// Package catalogtest provides a behavioural test suite shared by every
// catalog.Catalog implementation.
//
// # Usage
//
//	func TestStore(t *testing.T) {
//		suite.Run(t, &catalogtest.Suite{
//			NewCatalog: func(t *testing.T) catalog.Catalog { return catalog.NewStore() },
//		})
//	}
package catalogtest

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

// Suite exercises the Catalog contract. NewCatalog must return an empty
// catalog; it is called before every test.
type Suite struct {
	suite.Suite

	NewCatalog func(t *testing.T) catalog.Catalog

	cat catalog.Catalog
}

func (s *Suite) SetupTest() {
	s.cat = s.NewCatalog(s.T())
}

func (s *Suite) add(isbn, title, author string, year int) {
	book := entities.NewBook(isbn, title, author, year)
	s.Require().NoError(s.cat.AddBook(&book))
}

func (s *Suite) books() []entities.Book {
	books, err := s.cat.ListBooks()
	s.Require().NoError(err)
	return books
}

func (s *Suite) borrowed(isbn string) bool {
	ok, err := s.cat.IsBorrowed(isbn)
	s.Require().NoError(err)
	return ok
}

func (s *Suite) borrow(isbn, name string) bool {
	ok, err := s.cat.BorrowBook(isbn, name)
	s.Require().NoError(err)
	return ok
}

func (s *Suite) TestAddBook_AppendsInOrder() {
	s.add("1", "First", "A", 2001)
	s.add("2", "Second", "B", 2002)
	s.add("3", "Third", "C", 2003)

	books := s.books()
	s.Require().Len(books, 3)
	s.Equal("First", books[0].Title)
	s.Equal("Second", books[1].Title)
	s.Equal("Third", books[2].Title)
}

func (s *Suite) TestAddBook_NilFailsAndLeavesStoreUnchanged() {
	s.add("1", "First", "A", 2001)

	err := s.cat.AddBook(nil)

	s.ErrorIs(err, catalog.ErrInvalidArgument)
	s.Len(s.books(), 1)
}

func (s *Suite) TestAddBook_AllowsDuplicates() {
	s.add("978-DUP", "Same", "Author", 2020)
	s.add("978-DUP", "Same", "Author", 2020)
	s.add("978-OTHER", "same", "Someone", 2021)

	s.Len(s.books(), 3)
}

func (s *Suite) TestAddBook_AcceptsEmptyAndOddValues() {
	s.add("", "", "", 0)
	s.add("neg", "Old", "Ancient", -500)

	books := s.books()
	s.Require().Len(books, 2)
	s.Equal("", books[0].ISBN)
	s.Equal(-500, books[1].Year)

	has, err := s.cat.HasBookWithIsbn("")
	s.Require().NoError(err)
	s.True(has)
}

func (s *Suite) TestAddBook_CopiesTheArgument() {
	book := entities.NewBook("1", "Original", "A", 2000)
	s.Require().NoError(s.cat.AddBook(&book))

	book.Title = "Changed"

	s.Equal("Original", s.books()[0].Title)
}

func (s *Suite) TestListBooks_ReturnsACopy() {
	s.add("1", "First", "A", 2001)

	books := s.books()
	books[0].Title = "Mutated"
	books = append(books, entities.NewBook("2", "Extra", "B", 2002))
	s.Len(books, 2)

	again := s.books()
	s.Require().Len(again, 1)
	s.Equal("First", again[0].Title)
}

func (s *Suite) TestListBooks_EmptyIsNotNil() {
	books := s.books()
	s.NotNil(books)
	s.Empty(books)
}

func (s *Suite) TestHasBookWithIsbn_IsCaseSensitive() {
	s.add("978-abc", "Title", "Author", 2000)

	has, err := s.cat.HasBookWithIsbn("978-abc")
	s.Require().NoError(err)
	s.True(has)

	has, err = s.cat.HasBookWithIsbn("978-ABC")
	s.Require().NoError(err)
	s.False(has)

	has, err = s.cat.HasBookWithIsbn("978")
	s.Require().NoError(err)
	s.False(has)
}

func (s *Suite) TestHasBookWithTitle_IgnoresCase() {
	s.add("1", "Clean Code", "Robert Martin", 2008)

	for _, title := range []string{"Clean Code", "clean code", "CLEAN CODE"} {
		has, err := s.cat.HasBookWithTitle(title)
		s.Require().NoError(err)
		s.True(has, title)
	}

	has, err := s.cat.HasBookWithTitle("Clean")
	s.Require().NoError(err)
	s.False(has)
}

func (s *Suite) TestHasBookWithTitle_EmptyCatalog() {
	has, err := s.cat.HasBookWithTitle("")
	s.Require().NoError(err)
	s.False(has)
}

func (s *Suite) TestClearBooks() {
	s.add("1", "First", "A", 2001)
	s.add("2", "Second", "B", 2002)

	s.Require().NoError(s.cat.ClearBooks())

	s.Empty(s.books())
	has, err := s.cat.HasBookWithIsbn("1")
	s.Require().NoError(err)
	s.False(has)
}

func (s *Suite) TestFindByIsbn_FirstMatchWins() {
	s.add("978-DUP", "First", "A", 2001)
	s.add("978-DUP", "Second", "B", 2002)

	book, err := s.cat.FindByIsbn("978-DUP")

	s.Require().NoError(err)
	s.Require().NotNil(book)
	s.Equal("First", book.Title)
}

func (s *Suite) TestFindByIsbn_NotFound() {
	s.add("1", "First", "A", 2001)

	book, err := s.cat.FindByIsbn("missing")

	s.Require().NoError(err)
	s.Nil(book)
}

func (s *Suite) TestFindByIsbn_ReturnsACopy() {
	s.add("1", "First", "A", 2001)

	book, err := s.cat.FindByIsbn("1")
	s.Require().NoError(err)
	s.Require().NotNil(book)
	book.Title = "Mutated"

	s.Equal("First", s.books()[0].Title)
}

func (s *Suite) TestFindByAuthor_SubstringIgnoringCase() {
	s.add("1", "Bible", "Lenny", 2025)
	s.add("2", "Les singes", "Le R", 2024)
	s.add("3", "Other", "Allen Ginsberg", 1956)

	results, err := s.cat.FindByAuthor("len")

	s.Require().NoError(err)
	s.Require().Len(results, 2)
	s.Equal("Bible", results[0].Title)
	s.Equal("Other", results[1].Title)
}

func (s *Suite) TestFindByAuthor_EmptyQueryMatchesNothing() {
	s.add("1", "Bible", "Lenny", 2025)
	s.add("2", "Nameless", "", 2025)

	results, err := s.cat.FindByAuthor("")

	s.Require().NoError(err)
	s.NotNil(results)
	s.Empty(results)
}

func (s *Suite) TestFindByAuthor_NoMatch() {
	s.add("1", "Bible", "Lenny", 2025)

	results, err := s.cat.FindByAuthor("Tolkien")

	s.Require().NoError(err)
	s.NotNil(results)
	s.Empty(results)
}

func (s *Suite) TestFindByAuthor_WildcardCharactersAreLiteral() {
	s.add("1", "Percent", "100% Author", 2000)
	s.add("2", "Plain", "Author", 2000)

	results, err := s.cat.FindByAuthor("%")
	s.Require().NoError(err)
	s.Require().Len(results, 1)
	s.Equal("Percent", results[0].Title)

	results, err = s.cat.FindByAuthor("_")
	s.Require().NoError(err)
	s.Empty(results)
}

func (s *Suite) TestScenario_BorrowAndReturn() {
	s.add("978-1", "Bible", "Lenny", 2025)

	has, err := s.cat.HasBookWithIsbn("978-1")
	s.Require().NoError(err)
	s.True(has)

	s.True(s.borrow("978-1", "Roland"))
	s.True(s.borrowed("978-1"))

	name, ok, err := s.cat.ReturnBook("978-1")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("Roland", name)
	s.False(s.borrowed("978-1"))
}

func (s *Suite) TestBorrowBook_UnknownIsbn() {
	s.False(s.borrow("absent-isbn", "X"))
	s.False(s.borrowed("absent-isbn"))

	loans, err := s.cat.ListLoans()
	s.Require().NoError(err)
	s.Empty(loans)
}

func (s *Suite) TestBorrowBook_AlreadyBorrowedKeepsBorrower() {
	s.add("1", "Book", "Author", 2000)
	s.Require().True(s.borrow("1", "Alice"))

	s.False(s.borrow("1", "Bob"))

	loan, err := s.cat.GetBorrower("1")
	s.Require().NoError(err)
	s.Require().NotNil(loan)
	s.Equal("Alice", loan.BorrowerName)
}

func (s *Suite) TestBorrowBook_StoresEmptyBorrowerAsIs() {
	s.add("1", "Book", "Author", 2000)

	s.True(s.borrow("1", ""))

	loan, err := s.cat.GetBorrower("1")
	s.Require().NoError(err)
	s.Require().NotNil(loan)
	s.Equal("", loan.BorrowerName)

	name, ok, err := s.cat.ReturnBook("1")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("", name)
}

func (s *Suite) TestBorrowBook_DuplicateIsbnSharesOneLoan() {
	s.add("978-DUP", "First", "A", 2001)
	s.add("978-DUP", "Second", "B", 2002)

	s.True(s.borrow("978-DUP", "Alice"))
	s.False(s.borrow("978-DUP", "Bob"))
}

func (s *Suite) TestReturnBook_TwiceReportsNotFound() {
	s.add("1", "Book", "Author", 2000)
	s.Require().True(s.borrow("1", "Alice"))

	_, ok, err := s.cat.ReturnBook("1")
	s.Require().NoError(err)
	s.True(ok)

	name, ok, err := s.cat.ReturnBook("1")
	s.Require().NoError(err)
	s.False(ok)
	s.Empty(name)
}

func (s *Suite) TestReturnBook_NeverBorrowed() {
	s.add("1", "Book", "Author", 2000)

	_, ok, err := s.cat.ReturnBook("1")

	s.Require().NoError(err)
	s.False(ok)
}

func (s *Suite) TestRoundTrip_BorrowAgainWithDifferentName() {
	s.add("1", "Book", "Author", 2000)

	s.Require().True(s.borrow("1", "Alice"))
	_, ok, err := s.cat.ReturnBook("1")
	s.Require().NoError(err)
	s.Require().True(ok)

	s.True(s.borrow("1", "Bob"))
	loan, err := s.cat.GetBorrower("1")
	s.Require().NoError(err)
	s.Require().NotNil(loan)
	s.Equal("Bob", loan.BorrowerName)
}

func (s *Suite) TestGetBorrower_Absent() {
	loan, err := s.cat.GetBorrower("nothing")

	s.Require().NoError(err)
	s.Nil(loan)
}

func (s *Suite) TestListLoans_ReturnsACopy() {
	s.add("1", "Book", "Author", 2000)
	s.Require().True(s.borrow("1", "Alice"))

	loans, err := s.cat.ListLoans()
	s.Require().NoError(err)
	s.Require().Len(loans, 1)
	s.Equal("Alice", loans["1"].BorrowerName)

	delete(loans, "1")
	loans["2"] = entities.Loan{ISBN: "2", BorrowerName: "Mallory"}

	again, err := s.cat.ListLoans()
	s.Require().NoError(err)
	s.Require().Len(again, 1)
	s.Contains(again, "1")
	s.True(s.borrowed("1"))
	s.False(s.borrowed("2"))
}

func (s *Suite) TestClearLoans() {
	s.add("1", "Book", "Author", 2000)
	s.add("2", "Other", "Author", 2000)
	s.Require().True(s.borrow("1", "Alice"))
	s.Require().True(s.borrow("2", "Bob"))

	s.Require().NoError(s.cat.ClearLoans())

	s.False(s.borrowed("1"))
	s.False(s.borrowed("2"))
	s.Len(s.books(), 2)
}

func (s *Suite) TestClearBooks_KeepsLoans() {
	s.add("1", "Book", "Author", 2000)
	s.Require().True(s.borrow("1", "Alice"))

	s.Require().NoError(s.cat.ClearBooks())

	s.True(s.borrowed("1"))
	name, ok, err := s.cat.ReturnBook("1")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("Alice", name)
}

func (s *Suite) TestConcurrentBorrow_OnlyOneWins() {
	s.add("1", "Book", "Author", 2000)

	const borrowers = 16
	var wg sync.WaitGroup
	results := make(chan bool, borrowers)
	errs := make(chan error, borrowers)
	for i := 0; i < borrowers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := s.cat.BorrowBook("1", fmt.Sprintf("reader-%d", i))
			if err != nil {
				errs <- err
				return
			}
			results <- ok
		}(i)
	}
	wg.Wait()
	close(results)
	close(errs)

	for err := range errs {
		s.NoError(err)
	}
	wins := 0
	for ok := range results {
		if ok {
			wins++
		}
	}
	s.Equal(1, wins)
}
