package services

import (
	"time"

	"spendly/internal/models"
	"spendly/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, email, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// ProfileServicer defines the contract for profile-related business logic.
type ProfileServicer interface {
	GetOrCreateProfile(userID uint) (*models.Profile, error)
	UpdateProfile(userID uint, fullName *string, monthlySalary *int64, phoneNumber *string, dateOfBirth *time.Time, address *string) (*models.Profile, error)
}

// ExpenseFilter holds optional filter parameters for listing expenses.
type ExpenseFilter struct {
	Category *models.ExpenseCategory
	FromDate *time.Time
	ToDate   *time.Time
	Search   string
}

// ExpenseServicer defines the contract for expense-related business logic.
type ExpenseServicer interface {
	CreateExpense(userID uint, category models.ExpenseCategory, amount int64, description string, date time.Time) (*models.Expense, error)
	GetUserExpenses(userID uint, page pagination.PageRequest, filter ExpenseFilter) (*pagination.PageResponse[models.Expense], int64, error)
	GetExpenseByID(userID, expenseID uint) (*models.Expense, error)
	UpdateExpense(userID, expenseID uint, category models.ExpenseCategory, amount int64, description string, date time.Time) (*models.Expense, error)
	DeleteExpense(userID, expenseID uint) error
	GetRecentExpenses(userID uint, limit int) ([]models.Expense, error)
}

// InvestmentFilter holds optional filter parameters for listing investments.
type InvestmentFilter struct {
	Type     *models.InvestmentType
	FromDate *time.Time
	ToDate   *time.Time
	Search   string
}

// InvestmentServicer defines the contract for investment-related business logic.
type InvestmentServicer interface {
	CreateInvestment(userID uint, investmentType models.InvestmentType, amount int64, description string, date time.Time) (*models.Investment, error)
	GetUserInvestments(userID uint, page pagination.PageRequest, filter InvestmentFilter) (*pagination.PageResponse[models.Investment], int64, error)
	GetInvestmentByID(userID, investmentID uint) (*models.Investment, error)
	UpdateInvestment(userID, investmentID uint, investmentType models.InvestmentType, amount int64, description string, date time.Time) (*models.Investment, error)
	DeleteInvestment(userID, investmentID uint) error
	GetRecentInvestments(userID uint, limit int) ([]models.Investment, error)
}

// BudgetOverviewRow is one category's allocation state for a month. Unlike
// BudgetComparison it covers every category, including those with no
// budget row yet.
type BudgetOverviewRow struct {
	Category    models.ExpenseCategory `json:"category"`
	Allocated   int64                  `json:"allocated"`
	Actual      int64                  `json:"actual"`
	Remaining   int64                  `json:"remaining"`
	PercentUsed float64                `json:"percent_used"`
}

// BudgetServicer defines the contract for budget-related business logic.
type BudgetServicer interface {
	// SetMonthlyBudgets validates the whole allocation map before any
	// write, then upserts one row per category for the given month.
	SetMonthlyBudgets(userID uint, monthYear string, allocations map[models.ExpenseCategory]int64) ([]models.Budget, error)
	GetMonthlyBudgets(userID uint, monthYear string) ([]models.Budget, error)
	GetMonthlyOverview(userID uint, monthYear string) ([]BudgetOverviewRow, error)
}

// MonthlyTotals aggregates one user-month: income is the profile salary,
// expenses and investments are bucket sums, savings may be negative.
type MonthlyTotals struct {
	Income      int64 `json:"income"`
	Expenses    int64 `json:"expenses"`
	Investments int64 `json:"investments"`
	Savings     int64 `json:"savings"`
}

// CategoryTotal is one category's expense sum within a bucket.
type CategoryTotal struct {
	Category models.ExpenseCategory `json:"category"`
	Total    int64                  `json:"total"`
}

// TypeTotal is one investment type's sum within a bucket.
type TypeTotal struct {
	Type  models.InvestmentType `json:"investment_type"`
	Total int64                 `json:"total"`
}

// BudgetComparison is allocated vs actual for one budgeted category.
type BudgetComparison struct {
	Category    models.ExpenseCategory `json:"category"`
	Allocated   int64                  `json:"allocated"`
	Actual      int64                  `json:"actual"`
	Remaining   int64                  `json:"remaining"`
	PercentUsed float64                `json:"percent_used"`
}

// BudgetVsActual carries the comparison rows plus which bucket they came
// from: when the requested bucket has no budgets the engine falls back to
// the most recent bucket that does, and FellBack surfaces that.
type BudgetVsActual struct {
	BucketUsed string             `json:"bucket_used"`
	FellBack   bool               `json:"fell_back"`
	Rows       []BudgetComparison `json:"rows"`
}

// TrendPoint is one bucket's total in a trend series.
type TrendPoint struct {
	Bucket string `json:"month"`
	Total  int64  `json:"total"`
}

// AnalyticsServicer is the aggregation engine: all operations aggregate to
// zero when no matching records exist, never to an error.
type AnalyticsServicer interface {
	MonthlyTotals(userID uint, monthYear string) (*MonthlyTotals, error)
	ExpenseBreakdown(userID uint, monthYear string) ([]CategoryTotal, error)
	InvestmentBreakdown(userID uint, monthYear string) ([]TypeTotal, error)
	BudgetVsActual(userID uint, monthYear string) (*BudgetVsActual, error)
	ExpenseTrend(userID uint, monthsBack int, anchor time.Time) ([]TrendPoint, error)
	InvestmentTrend(userID uint, monthsBack int, anchor time.Time) ([]TrendPoint, error)
	SavingsRate(userID uint, monthYear string) (float64, error)
}

// ReportFile is a generated artifact ready for delivery.
type ReportFile struct {
	Path        string `json:"path"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// ReportServicer defines the contract for monthly report generation.
// The returned warning is non-empty whenever the artifact is text rather
// than PDF, covering both the missing capability and a failed render.
type ReportServicer interface {
	GenerateMonthlyReport(userID uint) (*ReportFile, string, error)
}

// ResetResult reports what a month reset removed.
type ResetResult struct {
	MonthYear          string `json:"month_year"`
	ExpensesDeleted    int64  `json:"expenses_deleted"`
	InvestmentsDeleted int64  `json:"investments_deleted"`
}

// ResetServicer defines the contract for the destructive month reset.
type ResetServicer interface {
	// ResetCurrentMonth deletes the current bucket's expenses and
	// investments for the user. The bucket is computed at call time,
	// never caller-supplied.
	ResetCurrentMonth(userID uint) (*ResetResult, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID uint, action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
