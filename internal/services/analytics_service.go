package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"spendly/internal/bucket"
	apperrors "spendly/internal/errors"
	"spendly/internal/models"
)

// analyticsService is the aggregation engine. Every operation treats
// missing data as zero; the only errors it returns are store failures.
type analyticsService struct {
	db *gorm.DB
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(db *gorm.DB) AnalyticsServicer {
	return &analyticsService{db: db}
}

// sumAmounts sums the amount column of the given model for one user-month.
func (s *analyticsService) sumAmounts(model interface{}, userID uint, monthYear string) (int64, error) {
	var total int64
	err := s.db.Model(model).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND month_year = ?", userID, monthYear).
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return total, nil
}

// MonthlyTotals computes income, expenses, investments, and savings for one
// user-month. Income is the profile's monthly salary; savings is
// income − expenses − investments and may be negative.
func (s *analyticsService) MonthlyTotals(userID uint, monthYear string) (*MonthlyTotals, error) {
	var profile models.Profile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		// No profile yet: income is simply 0.
	}

	expenses, err := s.sumAmounts(&models.Expense{}, userID, monthYear)
	if err != nil {
		return nil, err
	}
	investments, err := s.sumAmounts(&models.Investment{}, userID, monthYear)
	if err != nil {
		return nil, err
	}

	income := profile.MonthlySalary
	return &MonthlyTotals{
		Income:      income,
		Expenses:    expenses,
		Investments: investments,
		Savings:     income - expenses - investments,
	}, nil
}

// ExpenseBreakdown groups one month's expenses by category, descending by sum.
func (s *analyticsService) ExpenseBreakdown(userID uint, monthYear string) ([]CategoryTotal, error) {
	var rows []CategoryTotal
	err := s.db.Model(&models.Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND month_year = ?", userID, monthYear).
		Group("category").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

// InvestmentBreakdown groups one month's investments by type, descending by sum.
func (s *analyticsService) InvestmentBreakdown(userID uint, monthYear string) ([]TypeTotal, error) {
	var rows []TypeTotal
	err := s.db.Model(&models.Investment{}).
		Select("investment_type AS type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND month_year = ?", userID, monthYear).
		Group("investment_type").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return rows, nil
}

// BudgetVsActual compares allocations against actual spend for the
// requested month. When the user has no budgets in that month, it falls
// back to the most recent earlier month that has any, and reports the
// bucket actually used — the substitution is surfaced, never silent.
func (s *analyticsService) BudgetVsActual(userID uint, monthYear string) (*BudgetVsActual, error) {
	bucketUsed := monthYear
	fellBack := false

	var budgets []models.Budget
	err := s.db.Where("user_id = ? AND month_year = ?", userID, monthYear).
		Order("category").
		Find(&budgets).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if len(budgets) == 0 {
		var latest models.Budget
		err := s.db.Where("user_id = ?", userID).
			Order("month_year DESC").
			First(&latest).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// No budgets at all.
		case err != nil:
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		default:
			bucketUsed = latest.MonthYear
			fellBack = true
			err = s.db.Where("user_id = ? AND month_year = ?", userID, bucketUsed).
				Order("category").
				Find(&budgets).Error
			if err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
	}

	rows := make([]BudgetComparison, 0, len(budgets))
	for _, b := range budgets {
		var actual int64
		err := s.db.Model(&models.Expense{}).
			Select("COALESCE(SUM(amount), 0)").
			Where("user_id = ? AND category = ? AND month_year = ?", userID, b.Category, b.MonthYear).
			Scan(&actual).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var percentUsed float64
		if b.AllocatedAmount > 0 {
			percentUsed = float64(actual) / float64(b.AllocatedAmount) * 100
		}

		rows = append(rows, BudgetComparison{
			Category:    b.Category,
			Allocated:   b.AllocatedAmount,
			Actual:      actual,
			Remaining:   b.AllocatedAmount - actual,
			PercentUsed: percentUsed,
		})
	}

	return &BudgetVsActual{BucketUsed: bucketUsed, FellBack: fellBack, Rows: rows}, nil
}

// ExpenseTrend returns per-bucket expense totals walking backward from the
// anchor in fixed 30-day steps, oldest first.
func (s *analyticsService) ExpenseTrend(userID uint, monthsBack int, anchor time.Time) ([]TrendPoint, error) {
	return s.trend(&models.Expense{}, userID, monthsBack, anchor)
}

// InvestmentTrend returns per-bucket investment totals walking backward
// from the anchor in fixed 30-day steps, oldest first.
func (s *analyticsService) InvestmentTrend(userID uint, monthsBack int, anchor time.Time) ([]TrendPoint, error) {
	return s.trend(&models.Investment{}, userID, monthsBack, anchor)
}

func (s *analyticsService) trend(model interface{}, userID uint, monthsBack int, anchor time.Time) ([]TrendPoint, error) {
	keys := bucket.WalkBack(anchor, monthsBack)
	points := make([]TrendPoint, 0, len(keys))
	for _, key := range keys {
		var total int64
		err := s.db.Model(model).
			Select("COALESCE(SUM(amount), 0)").
			Where("user_id = ? AND month_year = ?", userID, key).
			Scan(&total).Error
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		points = append(points, TrendPoint{Bucket: key, Total: total})
	}
	return points, nil
}

// SavingsRate returns (income − expenses) / income × 100 for the month,
// or 0 when income is 0.
func (s *analyticsService) SavingsRate(userID uint, monthYear string) (float64, error) {
	totals, err := s.MonthlyTotals(userID, monthYear)
	if err != nil {
		return 0, err
	}
	if totals.Income <= 0 {
		return 0, nil
	}
	return float64(totals.Income-totals.Expenses) / float64(totals.Income) * 100, nil
}
