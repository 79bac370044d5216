package models

import (
	"time"

	"gorm.io/gorm"

	"spendly/internal/bucket"
)

// ExpenseCategory is the closed set of spending categories.
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "Food"
	CategoryTransport     ExpenseCategory = "Transport"
	CategoryShopping      ExpenseCategory = "Shopping"
	CategoryBills         ExpenseCategory = "Bills"
	CategoryEntertainment ExpenseCategory = "Entertainment"
	CategoryHealthcare    ExpenseCategory = "Healthcare"
	CategoryEducation     ExpenseCategory = "Education"
	CategoryOther         ExpenseCategory = "Other"
)

// ExpenseCategories lists all categories in display order.
var ExpenseCategories = []ExpenseCategory{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryBills,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryEducation,
	CategoryOther,
}

// ValidExpenseCategory reports whether c is a known category.
func ValidExpenseCategory(c ExpenseCategory) bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense represents a single spending record. Amount is in cents.
type Expense struct {
	Base
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	Category    ExpenseCategory `gorm:"size:20;not null" json:"category"`
	Amount      int64           `gorm:"type:bigint;not null" json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `gorm:"not null" json:"date"`
	MonthYear   string          `gorm:"size:7;not null;index" json:"month_year"`
}

// BeforeSave recomputes the month bucket from the event date on every
// persist, so editing a date always re-buckets the record.
func (e *Expense) BeforeSave(tx *gorm.DB) error {
	e.MonthYear = bucket.Of(e.Date)
	return nil
}
