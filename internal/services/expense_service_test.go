package services

import (
	"testing"
	"time"

	"spendly/internal/bucket"
	"spendly/internal/models"
	"spendly/internal/pagination"
	"spendly/internal/testutil"
)

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("failed to parse date %q: %v", value, err)
	}
	return parsed
}

func TestCreateExpense(t *testing.T) {
	t.Run("derives_month_bucket_from_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		date := mustParseDate(t, "2024-03-15")
		expense, err := svc.CreateExpense(user.ID, models.CategoryFood, 12000, "groceries", date)
		testutil.AssertNoError(t, err)

		if expense.ID == 0 {
			t.Fatal("expected non-zero expense ID")
		}
		if expense.MonthYear != "2024-03" {
			t.Errorf("expected month 2024-03, got %s", expense.MonthYear)
		}
	})

	t.Run("zero_date_defaults_to_now", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		expense, err := svc.CreateExpense(user.ID, models.CategoryFood, 12000, "", time.Time{})
		testutil.AssertNoError(t, err)

		if expense.MonthYear != bucket.Current() {
			t.Errorf("expected current bucket, got %s", expense.MonthYear)
		}
	})

	t.Run("rejects_unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, "Groceries", 12000, "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_CATEGORY")
	})

	t.Run("rejects_non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateExpense(user.ID, models.CategoryFood, 0, "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserExpenses(t *testing.T) {
	t.Run("returns_user_expenses_with_total", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)
		other := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpense(t, db, user.ID, models.CategoryFood, 10000)
		testutil.CreateTestExpense(t, db, user.ID, models.CategoryBills, 20000)
		testutil.CreateTestExpense(t, db, other.ID, models.CategoryFood, 99999)

		page, total, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{}, ExpenseFilter{})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 2 {
			t.Errorf("expected 2 items, got %d", page.TotalItems)
		}
		if total != 30000 {
			t.Errorf("expected total 30000, got %d", total)
		}
	})

	t.Run("filters_by_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpense(t, db, user.ID, models.CategoryFood, 10000)
		testutil.CreateTestExpense(t, db, user.ID, models.CategoryBills, 20000)

		category := models.CategoryBills
		page, total, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{}, ExpenseFilter{Category: &category})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 1 {
			t.Errorf("expected 1 item, got %d", page.TotalItems)
		}
		if total != 20000 {
			t.Errorf("expected total 20000, got %d", total)
		}
	})

	t.Run("filters_by_date_range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpenseAt(t, db, user.ID, models.CategoryFood, 10000, mustParseDate(t, "2024-01-10"))
		testutil.CreateTestExpenseAt(t, db, user.ID, models.CategoryFood, 20000, mustParseDate(t, "2024-02-10"))
		testutil.CreateTestExpenseAt(t, db, user.ID, models.CategoryFood, 40000, mustParseDate(t, "2024-03-10"))

		from := mustParseDate(t, "2024-02-01")
		to := mustParseDate(t, "2024-02-28")
		page, total, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{}, ExpenseFilter{FromDate: &from, ToDate: &to})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 1 {
			t.Errorf("expected 1 item, got %d", page.TotalItems)
		}
		if total != 20000 {
			t.Errorf("expected total 20000, got %d", total)
		}
	})

	t.Run("newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestExpenseAt(t, db, user.ID, models.CategoryFood, 10000, mustParseDate(t, "2024-01-10"))
		testutil.CreateTestExpenseAt(t, db, user.ID, models.CategoryFood, 20000, mustParseDate(t, "2024-03-10"))

		page, _, err := svc.GetUserExpenses(user.ID, pagination.PageRequest{}, ExpenseFilter{})
		testutil.AssertNoError(t, err)

		if len(page.Data) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(page.Data))
		}
		if page.Data[0].Amount != 20000 {
			t.Errorf("expected newest expense first, got amount %d", page.Data[0].Amount)
		}
	})
}

func TestUpdateExpense(t *testing.T) {
	t.Run("date_change_rebuckets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		expense, err := svc.CreateExpense(user.ID, models.CategoryFood, 12000, "groceries", mustParseDate(t, "2024-03-15"))
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateExpense(user.ID, expense.ID, models.CategoryFood, 12000, "groceries", mustParseDate(t, "2024-04-02"))
		testutil.AssertNoError(t, err)

		if updated.MonthYear != "2024-04" {
			t.Errorf("expected month 2024-04 after date change, got %s", updated.MonthYear)
		}
	})

	t.Run("other_users_expense_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		expense := testutil.CreateTestExpense(t, db, user1.ID, models.CategoryFood, 10000)

		_, err := svc.UpdateExpense(user2.ID, expense.ID, models.CategoryFood, 5000, "", time.Now())
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestDeleteExpense(t *testing.T) {
	t.Run("removes_expense", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		expense := testutil.CreateTestExpense(t, db, user.ID, models.CategoryFood, 10000)

		testutil.AssertNoError(t, svc.DeleteExpense(user.ID, expense.ID))

		_, err := svc.GetExpenseByID(user.ID, expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})

	t.Run("other_users_expense_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		expense := testutil.CreateTestExpense(t, db, user1.ID, models.CategoryFood, 10000)

		err := svc.DeleteExpense(user2.ID, expense.ID)
		testutil.AssertAppError(t, err, "EXPENSE_NOT_FOUND")
	})
}

func TestGetRecentExpenses(t *testing.T) {
	t.Run("limited_and_newest_first", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewExpenseService(db)
		user := testutil.CreateTestUser(t, db)

		for i := 1; i <= 7; i++ {
			testutil.CreateTestExpenseAt(t, db, user.ID, models.CategoryFood, int64(i*1000),
				mustParseDate(t, "2024-01-01").AddDate(0, 0, i))
		}

		expenses, err := svc.GetRecentExpenses(user.ID, 5)
		testutil.AssertNoError(t, err)

		if len(expenses) != 5 {
			t.Fatalf("expected 5 expenses, got %d", len(expenses))
		}
		if expenses[0].Amount != 7000 {
			t.Errorf("expected newest expense first, got amount %d", expenses[0].Amount)
		}
	})
}
