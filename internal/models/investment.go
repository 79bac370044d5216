package models

import (
	"time"

	"gorm.io/gorm"

	"spendly/internal/bucket"
)

// InvestmentType is the closed set of investment types.
type InvestmentType string

const (
	InvestmentStocks      InvestmentType = "Stocks"
	InvestmentMutualFunds InvestmentType = "Mutual Funds"
	InvestmentRealEstate  InvestmentType = "Real Estate"
	InvestmentSavings     InvestmentType = "Savings"
	InvestmentCrypto      InvestmentType = "Crypto"
	InvestmentOther       InvestmentType = "Other"
)

// InvestmentTypes lists all types in display order.
var InvestmentTypes = []InvestmentType{
	InvestmentStocks,
	InvestmentMutualFunds,
	InvestmentRealEstate,
	InvestmentSavings,
	InvestmentCrypto,
	InvestmentOther,
}

// ValidInvestmentType reports whether t is a known type.
func ValidInvestmentType(t InvestmentType) bool {
	for _, known := range InvestmentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Investment represents a single investment record. Amount is in cents.
type Investment struct {
	Base
	UserID      uint           `gorm:"not null;index" json:"user_id"`
	Type        InvestmentType `gorm:"size:20;not null;column:investment_type" json:"investment_type"`
	Amount      int64          `gorm:"type:bigint;not null" json:"amount"`
	Description string         `json:"description"`
	Date        time.Time      `gorm:"not null" json:"date"`
	MonthYear   string         `gorm:"size:7;not null;index" json:"month_year"`
}

// BeforeSave recomputes the month bucket from the event date on every
// persist, so editing a date always re-buckets the record.
func (i *Investment) BeforeSave(tx *gorm.DB) error {
	i.MonthYear = bucket.Of(i.Date)
	return nil
}
