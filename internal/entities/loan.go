package entities

// Loan is an active borrowing, keyed by ISBN. At most one exists per ISBN.
type Loan struct {
	ISBN         string `gorm:"primaryKey;size:64" json:"isbn"`
	BorrowerName string `gorm:"size:256" json:"borrower_name"`
}
