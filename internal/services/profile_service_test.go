package services

import (
	"testing"

	"spendly/internal/testutil"
)

func TestGetOrCreateProfile(t *testing.T) {
	t.Run("creates_on_first_access", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)
		user := testutil.CreateTestUser(t, db)

		profile, err := svc.GetOrCreateProfile(user.ID)
		testutil.AssertNoError(t, err)

		if profile.ID == 0 {
			t.Fatal("expected non-zero profile ID")
		}
		if profile.MonthlySalary != 0 {
			t.Errorf("expected zero salary, got %d", profile.MonthlySalary)
		}

		again, err := svc.GetOrCreateProfile(user.ID)
		testutil.AssertNoError(t, err)
		if again.ID != profile.ID {
			t.Errorf("expected same profile, got %d and %d", profile.ID, again.ID)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Run("updates_provided_fields_only", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestProfile(t, db, user.ID, 100000)

		name := "Asim Khan"
		salary := int64(250000)
		updated, err := svc.UpdateProfile(user.ID, &name, &salary, nil, nil, nil)
		testutil.AssertNoError(t, err)

		if updated.FullName != "Asim Khan" {
			t.Errorf("expected full name updated, got %s", updated.FullName)
		}
		if updated.MonthlySalary != 250000 {
			t.Errorf("expected salary 250000, got %d", updated.MonthlySalary)
		}

		fetched, err := svc.GetOrCreateProfile(user.ID)
		testutil.AssertNoError(t, err)
		if fetched.MonthlySalary != 250000 {
			t.Errorf("expected persisted salary 250000, got %d", fetched.MonthlySalary)
		}
	})

	t.Run("rejects_negative_salary", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewProfileService(db)
		user := testutil.CreateTestUser(t, db)

		salary := int64(-1)
		_, err := svc.UpdateProfile(user.ID, nil, &salary, nil, nil, nil)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
