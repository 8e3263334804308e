package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/library/internal/catalog"
	"github.com/mrlokans/library/internal/entities"
)

type LoansController struct {
	catalog catalog.Catalog
}

func NewLoansController(c catalog.Catalog) *LoansController {
	return &LoansController{catalog: c}
}

// BorrowRequest names the book and the borrower. An empty borrower is stored as is.
type BorrowRequest struct {
	ISBN     string `json:"isbn"`
	Borrower string `json:"borrower"`
}

// GetAllLoans returns the ISBN to loan mapping
// GET /api/loans
func (lc *LoansController) GetAllLoans(c *gin.Context) {
	loans, err := lc.catalog.ListLoans()
	if err != nil {
		respondInternalError(c, err, "list loans")
		return
	}
	c.JSON(http.StatusOK, loans)
}

// GetLoan returns the active loan for the ISBN
// GET /api/loans/lookup?isbn=
func (lc *LoansController) GetLoan(c *gin.Context) {
	isbn, ok := isbnQuery(c)
	if !ok {
		return
	}
	loan, err := lc.catalog.GetBorrower(isbn)
	if err != nil {
		respondInternalError(c, err, "get borrower")
		return
	}
	if loan == nil {
		respondNotFound(c, "loan")
		return
	}
	c.JSON(http.StatusOK, loan)
}

// Borrow lends a book
// POST /api/loans
func (lc *LoansController) Borrow(c *gin.Context) {
	var req BorrowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid loan: "+err.Error())
		return
	}

	book, err := lc.catalog.FindByIsbn(req.ISBN)
	if err != nil {
		respondInternalError(c, err, "find book")
		return
	}
	if book == nil {
		respondNotFound(c, "book")
		return
	}

	ok, err := lc.catalog.BorrowBook(req.ISBN, req.Borrower)
	if err != nil {
		respondInternalError(c, err, "borrow book")
		return
	}
	if !ok {
		respondConflict(c, "book already borrowed", "already_borrowed")
		return
	}

	respondCreated(c, entities.Loan{ISBN: req.ISBN, BorrowerName: req.Borrower})
}

// Return ends a loan
// DELETE /api/loans?isbn=
func (lc *LoansController) Return(c *gin.Context) {
	isbn, ok := isbnQuery(c)
	if !ok {
		return
	}
	borrower, ok, err := lc.catalog.ReturnBook(isbn)
	if err != nil {
		respondInternalError(c, err, "return book")
		return
	}
	if !ok {
		respondNotFound(c, "loan")
		return
	}
	respondSuccess(c, "returned", entities.Loan{ISBN: isbn, BorrowerName: borrower})
}

// ClearLoans ends every loan
// DELETE /api/loans/all
func (lc *LoansController) ClearLoans(c *gin.Context) {
	if err := lc.catalog.ClearLoans(); err != nil {
		respondInternalError(c, err, "clear loans")
		return
	}
	respondSuccess(c, "loans cleared", nil)
}
