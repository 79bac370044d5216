package models

import "time"

// Budget is a monthly allocation for one category. At most one row exists
// per (user, category, month); concurrent writes resolve through an upsert
// on that key. Rows are updated in place — no Base embed, no soft deletes.
type Budget struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	UserID          uint            `gorm:"not null;uniqueIndex:idx_budgets_user_category_month" json:"user_id"`
	Category        ExpenseCategory `gorm:"size:20;not null;uniqueIndex:idx_budgets_user_category_month" json:"category"`
	MonthYear       string          `gorm:"size:7;not null;uniqueIndex:idx_budgets_user_category_month" json:"month_year"`
	AllocatedAmount int64           `gorm:"type:bigint;not null" json:"allocated_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
