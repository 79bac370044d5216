package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"spendly/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithUsername(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithUsername creates a user with the given username.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Email:    username + "@test.com",
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestProfile creates a profile with the given monthly salary (in cents).
func CreateTestProfile(t *testing.T, db *gorm.DB, userID uint, monthlySalary int64) *models.Profile {
	t.Helper()

	profile := &models.Profile{
		UserID:        userID,
		FullName:      fmt.Sprintf("Test User %d", nextID()),
		MonthlySalary: monthlySalary,
	}
	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return profile
}

// CreateTestExpense creates an expense dated now.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID uint, category models.ExpenseCategory, amount int64) *models.Expense {
	t.Helper()
	return CreateTestExpenseAt(t, db, userID, category, amount, time.Now())
}

// CreateTestExpenseAt creates an expense with the given date. The month
// bucket is derived by the model's save hook.
func CreateTestExpenseAt(t *testing.T, db *gorm.DB, userID uint, category models.ExpenseCategory, amount int64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:      userID,
		Category:    category,
		Amount:      amount,
		Description: fmt.Sprintf("Test expense %d", nextID()),
		Date:        date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestInvestment creates an investment dated now.
func CreateTestInvestment(t *testing.T, db *gorm.DB, userID uint, investmentType models.InvestmentType, amount int64) *models.Investment {
	t.Helper()
	return CreateTestInvestmentAt(t, db, userID, investmentType, amount, time.Now())
}

// CreateTestInvestmentAt creates an investment with the given date.
func CreateTestInvestmentAt(t *testing.T, db *gorm.DB, userID uint, investmentType models.InvestmentType, amount int64, date time.Time) *models.Investment {
	t.Helper()

	investment := &models.Investment{
		UserID:      userID,
		Type:        investmentType,
		Amount:      amount,
		Description: fmt.Sprintf("Test investment %d", nextID()),
		Date:        date,
	}
	if err := db.Create(investment).Error; err != nil {
		t.Fatalf("failed to create test investment: %v", err)
	}
	return investment
}

// CreateTestBudget creates a budget allocation for one category and month.
func CreateTestBudget(t *testing.T, db *gorm.DB, userID uint, category models.ExpenseCategory, monthYear string, allocated int64) *models.Budget {
	t.Helper()

	budget := &models.Budget{
		UserID:          userID,
		Category:        category,
		MonthYear:       monthYear,
		AllocatedAmount: allocated,
	}
	if err := db.Create(budget).Error; err != nil {
		t.Fatalf("failed to create test budget: %v", err)
	}
	return budget
}
