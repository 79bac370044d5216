package services

import (
	"testing"
	"time"

	"spendly/internal/models"
	"spendly/internal/pagination"
	"spendly/internal/testutil"
)

func TestCreateInvestment(t *testing.T) {
	t.Run("derives_month_bucket_from_date", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)

		investment, err := svc.CreateInvestment(user.ID, models.InvestmentStocks, 50000, "index fund", mustParseDate(t, "2024-11-30"))
		testutil.AssertNoError(t, err)

		if investment.MonthYear != "2024-11" {
			t.Errorf("expected month 2024-11, got %s", investment.MonthYear)
		}
	})

	t.Run("rejects_unknown_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateInvestment(user.ID, "Bonds", 50000, "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_INVESTMENT_TYPE")
	})

	t.Run("rejects_non_positive_amount", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateInvestment(user.ID, models.InvestmentStocks, -100, "", time.Now())
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetUserInvestments(t *testing.T) {
	t.Run("filters_by_type_with_total", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentStocks, 30000)
		testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentStocks, 20000)
		testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentCrypto, 10000)

		investmentType := models.InvestmentStocks
		page, total, err := svc.GetUserInvestments(user.ID, pagination.PageRequest{}, InvestmentFilter{Type: &investmentType})
		testutil.AssertNoError(t, err)

		if page.TotalItems != 2 {
			t.Errorf("expected 2 items, got %d", page.TotalItems)
		}
		if total != 50000 {
			t.Errorf("expected total 50000, got %d", total)
		}
	})
}

func TestUpdateInvestment(t *testing.T) {
	t.Run("date_change_rebuckets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)

		investment, err := svc.CreateInvestment(user.ID, models.InvestmentStocks, 50000, "", mustParseDate(t, "2024-05-20"))
		testutil.AssertNoError(t, err)

		updated, err := svc.UpdateInvestment(user.ID, investment.ID, models.InvestmentStocks, 50000, "", mustParseDate(t, "2024-06-01"))
		testutil.AssertNoError(t, err)

		if updated.MonthYear != "2024-06" {
			t.Errorf("expected month 2024-06 after date change, got %s", updated.MonthYear)
		}
	})

	t.Run("other_users_investment_not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user1 := testutil.CreateTestUser(t, db)
		user2 := testutil.CreateTestUser(t, db)

		investment := testutil.CreateTestInvestment(t, db, user1.ID, models.InvestmentStocks, 30000)

		_, err := svc.UpdateInvestment(user2.ID, investment.ID, models.InvestmentStocks, 10000, "", time.Now())
		testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
	})
}

func TestDeleteInvestment(t *testing.T) {
	t.Run("removes_investment", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewInvestmentService(db)
		user := testutil.CreateTestUser(t, db)

		investment := testutil.CreateTestInvestment(t, db, user.ID, models.InvestmentStocks, 30000)

		testutil.AssertNoError(t, svc.DeleteInvestment(user.ID, investment.ID))

		_, err := svc.GetInvestmentByID(user.ID, investment.ID)
		testutil.AssertAppError(t, err, "INVESTMENT_NOT_FOUND")
	})
}
