package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "spendly/internal/errors"
	"spendly/internal/models"
)

// budgetService handles budget-related business logic.
type budgetService struct {
	db *gorm.DB
}

// NewBudgetService creates a new BudgetServicer.
func NewBudgetService(db *gorm.DB) BudgetServicer {
	return &budgetService{db: db}
}

// SetMonthlyBudgets upserts one allocation row per category for the month.
// The whole map is validated before any write so a bad entry never leaves
// a partial apply behind. Each upsert targets the (user, category, month)
// unique key, so concurrent submissions from the same owner update the
// existing row instead of inserting a duplicate.
func (s *budgetService) SetMonthlyBudgets(
	userID uint,
	monthYear string,
	allocations map[models.ExpenseCategory]int64,
) ([]models.Budget, error) {
	if len(allocations) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidBudget, "no allocations provided")
	}
	for category, amount := range allocations {
		if !models.ValidExpenseCategory(category) {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidBudget, "unknown category: "+string(category))
		}
		if amount <= 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidBudget, "allocation for "+string(category)+" must be positive")
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for category, amount := range allocations {
			budget := models.Budget{
				UserID:          userID,
				Category:        category,
				MonthYear:       monthYear,
				AllocatedAmount: amount,
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}, {Name: "month_year"}},
				DoUpdates: clause.AssignmentColumns([]string{"allocated_amount", "updated_at"}),
			}).Create(&budget).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetMonthlyBudgets(userID, monthYear)
}

// GetMonthlyBudgets returns the user's budget rows for a month, ordered by
// category.
func (s *budgetService) GetMonthlyBudgets(userID uint, monthYear string) ([]models.Budget, error) {
	var budgets []models.Budget
	err := s.db.Where("user_id = ? AND month_year = ?", userID, monthYear).
		Order("category").
		Find(&budgets).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return budgets, nil
}

// GetMonthlyOverview returns one row per category for the month, including
// categories with no allocation yet. Percent used is 0 when nothing is
// allocated, regardless of spend.
func (s *budgetService) GetMonthlyOverview(userID uint, monthYear string) ([]BudgetOverviewRow, error) {
	budgets, err := s.GetMonthlyBudgets(userID, monthYear)
	if err != nil {
		return nil, err
	}

	allocated := make(map[models.ExpenseCategory]int64, len(budgets))
	for _, b := range budgets {
		allocated[b.Category] = b.AllocatedAmount
	}

	rows := make([]BudgetOverviewRow, 0, len(models.ExpenseCategories))
	for _, category := range models.ExpenseCategories {
		var actual int64
		err := s.db.Model(&models.Expense{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("user_id = ? AND category = ? AND month_year = ?", userID, category, monthYear).
			Scan(&actual).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		alloc := allocated[category]
		var percentUsed float64
		if alloc > 0 {
			percentUsed = float64(actual) / float64(alloc) * 100
		}

		rows = append(rows, BudgetOverviewRow{
			Category:    category,
			Allocated:   alloc,
			Actual:      actual,
			Remaining:   alloc - actual,
			PercentUsed: percentUsed,
		})
	}

	return rows, nil
}
