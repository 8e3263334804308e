package books

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"

	"github.com/mrlokans/library/internal/entities"
)

func (r *Repository) IsBorrowed(isbn string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Loan{}).Where("isbn = ?", isbn).Count(&count).Error
	return count > 0, err
}

// BorrowBook records a loan if a book with the ISBN exists and is not on loan.
func (r *Repository) BorrowBook(isbn, borrower string) (bool, error) {
	borrowed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var books int64
		if err := tx.Model(&entities.Book{}).Where("isbn = ?", isbn).Count(&books).Error; err != nil {
			return fmt.Errorf("failed to look up book: %w", err)
		}
		if books == 0 {
			return nil
		}

		var loans int64
		if err := tx.Model(&entities.Loan{}).Where("isbn = ?", isbn).Count(&loans).Error; err != nil {
			return fmt.Errorf("failed to look up loan: %w", err)
		}
		if loans > 0 {
			return nil
		}

		err := tx.Create(&entities.Loan{ISBN: isbn, BorrowerName: borrower}).Error
		if isConstraintViolation(err) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to create loan: %w", err)
		}
		borrowed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return borrowed, nil
}

// ReturnBook deletes the loan and reports the borrower's name.
func (r *Repository) ReturnBook(isbn string) (string, bool, error) {
	var loan entities.Loan
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("isbn = ?", isbn).First(&loan).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Where("isbn = ?", isbn).Delete(&entities.Loan{}).Error; err != nil {
			return fmt.Errorf("failed to delete loan: %w", err)
		}
		found = true
		return nil
	})
	if err != nil || !found {
		return "", false, err
	}
	return loan.BorrowerName, true, nil
}

func (r *Repository) GetBorrower(isbn string) (*entities.Loan, error) {
	var loan entities.Loan
	err := r.db.Where("isbn = ?", isbn).First(&loan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *Repository) ListLoans() (map[string]entities.Loan, error) {
	var loans []entities.Loan
	if err := r.db.Find(&loans).Error; err != nil {
		return nil, err
	}
	result := make(map[string]entities.Loan, len(loans))
	for _, l := range loans {
		result[l.ISBN] = l
	}
	return result, nil
}

func (r *Repository) ClearLoans() error {
	return r.db.Where("1 = 1").Delete(&entities.Loan{}).Error
}

// isConstraintViolation reports whether err is a SQLite constraint failure,
// which for loans means the ISBN is already on loan.
func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}
