// Package console implements the interactive, line-oriented library menu.
//
// The menu reads one answer per line and writes plain status lines. It holds
// no state of its own; everything goes through a catalog.Catalog.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

const (
	Banner = "Welcome to Library v1.0"
	Menu   = "1) Add book  2) List books  3) Borrow  4) Return  5) Find by author  6) Exit"
)

// Status lines printed by the menu.
const (
	MsgAdded          = "Added: "
	MsgNotFound       = "Not found."
	MsgAlreadyOnLoan  = "Already borrowed."
	MsgBorrowed       = "OK."
	MsgReturned       = "Returned."
	MsgNotBorrowed    = "Not borrowed."
	MsgUnknownOption  = "Unknown option."
	MsgBye            = "Bye."
	MsgInvalidYear    = "Invalid year, defaulting to 0"
	MsgSimilarExists  = "Warning: similar book already exists."
	borrowedIndicator = " [BORROWED]"
)

// Console runs the menu loop against a catalog.
type Console struct {
	catalog catalog.Catalog
	in      *bufio.Scanner
	out     io.Writer
}

// New creates a console reading answers from in and printing to out.
func New(c catalog.Catalog, in io.Reader, out io.Writer) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &Console{
		catalog: c,
		in:      scanner,
		out:     out,
	}
}

// Run shows the menu until the user picks Exit or input ends. Catalog and
// read errors stop the loop and are returned.
func (c *Console) Run() error {
	c.println(Banner)
	defer c.println(MsgBye)

	for {
		c.println("\n" + Menu)
		choice, err := c.prompt("> ")
		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.addBook()
		case "2":
			err = c.listBooks()
		case "3":
			err = c.borrowBook()
		case "4":
			err = c.returnBook()
		case "5":
			err = c.findByAuthor()
		case "6":
			return nil
		default:
			c.println(MsgUnknownOption)
		}

		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) addBook() error {
	answers, err := c.ask("ISBN? ", "Title? ", "Author? ", "Year? ")
	if err != nil {
		return err
	}
	isbn, title, author := answers[0], answers[1], answers[2]

	// Years are 32-bit; anything outside that range is invalid too.
	year, parseErr := strconv.ParseInt(answers[3], 10, 32)
	if parseErr != nil {
		year = 0
		c.println(MsgInvalidYear)
	}

	book := entities.NewBook(isbn, title, author, int(year))

	existing, err := c.catalog.ListBooks()
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}
	for _, b := range existing {
		if catalog.IsSimilar(b, book) {
			c.println(MsgSimilarExists)
		}
	}

	if err := c.catalog.AddBook(&book); err != nil {
		return fmt.Errorf("failed to add book: %w", err)
	}
	c.println(MsgAdded + book.String())
	return nil
}

func (c *Console) listBooks() error {
	books, err := c.catalog.ListBooks()
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}
	return c.printBooks(books)
}

func (c *Console) borrowBook() error {
	answers, err := c.ask("Borrower name? ", "ISBN to borrow? ")
	if err != nil {
		return err
	}
	name, isbn := answers[0], answers[1]

	book, err := c.catalog.FindByIsbn(isbn)
	if err != nil {
		return fmt.Errorf("failed to find book: %w", err)
	}
	if book == nil {
		c.println(MsgNotFound)
		return nil
	}

	ok, err := c.catalog.BorrowBook(isbn, name)
	if err != nil {
		return fmt.Errorf("failed to borrow book: %w", err)
	}
	if !ok {
		c.println(MsgAlreadyOnLoan)
		return nil
	}
	c.println(MsgBorrowed)
	return nil
}

func (c *Console) returnBook() error {
	answers, err := c.ask("ISBN to return? ")
	if err != nil {
		return err
	}

	_, ok, err := c.catalog.ReturnBook(answers[0])
	if err != nil {
		return fmt.Errorf("failed to return book: %w", err)
	}
	if ok {
		c.println(MsgReturned)
	} else {
		c.println(MsgNotBorrowed)
	}
	return nil
}

func (c *Console) findByAuthor() error {
	answers, err := c.ask("Author contains? ")
	if err != nil {
		return err
	}

	books, err := c.catalog.FindByAuthor(answers[0])
	if err != nil {
		return fmt.Errorf("failed to search books: %w", err)
	}
	return c.printBooks(books)
}

func (c *Console) printBooks(books []entities.Book) error {
	for _, b := range books {
		borrowed, err := c.catalog.IsBorrowed(b.ISBN)
		if err != nil {
			return fmt.Errorf("failed to check loan: %w", err)
		}
		line := b.String()
		if borrowed {
			line += borrowedIndicator
		}
		c.println(line)
	}
	return nil
}
