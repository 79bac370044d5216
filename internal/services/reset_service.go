package services

import (
	"gorm.io/gorm"

	"spendly/internal/bucket"
	apperrors "spendly/internal/errors"
	"spendly/internal/models"
)

// resetService deletes the current month's transactions. Budgets, reports,
// and the profile are untouched; resetting an empty month succeeds with
// zero counts.
type resetService struct {
	db *gorm.DB
}

// NewResetService creates a new ResetServicer.
func NewResetService(db *gorm.DB) ResetServicer {
	return &resetService{db: db}
}

// ResetCurrentMonth deletes the user's expenses and investments in the
// current bucket, computed at call time. Both deletes run in one
// transaction so a failure never leaves a half-cleared month.
func (s *resetService) ResetCurrentMonth(userID uint) (*ResetResult, error) {
	monthYear := bucket.Current()
	result := &ResetResult{MonthYear: monthYear}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND month_year = ?", userID, monthYear).
			Delete(&models.Expense{})
		if res.Error != nil {
			return res.Error
		}
		result.ExpensesDeleted = res.RowsAffected

		res = tx.Where("user_id = ? AND month_year = ?", userID, monthYear).
			Delete(&models.Investment{})
		if res.Error != nil {
			return res.Error
		}
		result.InvestmentsDeleted = res.RowsAffected
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return result, nil
}
