package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

type BooksController struct {
	catalog catalog.Catalog
}

func NewBooksController(c catalog.Catalog) *BooksController {
	return &BooksController{catalog: c}
}

// BookView is a book together with its loan status.
type BookView struct {
	entities.Book
	Borrowed bool `json:"borrowed"`
}

// AddBookRequest carries the fields of a new book. None is required.
type AddBookRequest struct {
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
}

// AddBookResponse reports the stored book and whether a book with the same
// ISBN or title was already on the shelf.
type AddBookResponse struct {
	Book      entities.Book `json:"book"`
	Duplicate bool          `json:"duplicate"`
}

// GetAllBooks returns every book in insertion order
// GET /api/books
func (bc *BooksController) GetAllBooks(c *gin.Context) {
	books, err := bc.catalog.ListBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	bc.respondBooks(c, books)
}

// AddBook appends a book; duplicates are flagged, not rejected
// POST /api/books
func (bc *BooksController) AddBook(c *gin.Context) {
	var req AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid book: "+err.Error())
		return
	}
	book := entities.NewBook(req.ISBN, req.Title, req.Author, req.Year)

	existing, err := bc.catalog.ListBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	duplicate := false
	for _, b := range existing {
		if catalog.IsSimilar(b, book) {
			duplicate = true
			break
		}
	}

	if err := bc.catalog.AddBook(&book); err != nil {
		respondInternalError(c, err, "add book")
		return
	}

	respondCreated(c, AddBookResponse{Book: book, Duplicate: duplicate})
}

// GetBook returns the first book added with the ISBN
// GET /api/books/lookup?isbn=
func (bc *BooksController) GetBook(c *gin.Context) {
	isbn, ok := isbnQuery(c)
	if !ok {
		return
	}
	book, err := bc.catalog.FindByIsbn(isbn)
	if err != nil {
		respondInternalError(c, err, "find book")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}

	borrowed, err := bc.catalog.IsBorrowed(book.ISBN)
	if err != nil {
		respondInternalError(c, err, "check loan")
		return
	}
	c.JSON(http.StatusOK, BookView{Book: *book, Borrowed: borrowed})
}

// SearchByAuthor returns books whose author contains the query
// GET /api/books/search?author=
func (bc *BooksController) SearchByAuthor(c *gin.Context) {
	books, err := bc.catalog.FindByAuthor(c.Query("author"))
	if err != nil {
		respondInternalError(c, err, "search books")
		return
	}
	bc.respondBooks(c, books)
}

// ClearBooks removes every book. Loans are left alone.
// DELETE /api/books
func (bc *BooksController) ClearBooks(c *gin.Context) {
	if err := bc.catalog.ClearBooks(); err != nil {
		respondInternalError(c, err, "clear books")
		return
	}
	respondSuccess(c, "books cleared", nil)
}

func (bc *BooksController) respondBooks(c *gin.Context, books []entities.Book) {
	views := make([]BookView, 0, len(books))
	for _, b := range books {
		borrowed, err := bc.catalog.IsBorrowed(b.ISBN)
		if err != nil {
			respondInternalError(c, err, "check loan")
			return
		}
		views = append(views, BookView{Book: b, Borrowed: borrowed})
	}
	c.JSON(http.StatusOK, views)
}
