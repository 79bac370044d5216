package models

import "time"

// MonthlyReport is the persisted snapshot taken when a report is generated.
// Unique per (user, month): regenerating overwrites the prior snapshot and
// artifact reference. Rows are upserted in place — no Base embed, no soft
// deletes.
type MonthlyReport struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;uniqueIndex:idx_monthly_reports_user_month" json:"user_id"`
	MonthYear        string    `gorm:"size:7;not null;uniqueIndex:idx_monthly_reports_user_month" json:"month_year"`
	TotalIncome      int64     `gorm:"type:bigint;not null;default:0" json:"total_income"`
	TotalExpenses    int64     `gorm:"type:bigint;not null;default:0" json:"total_expenses"`
	TotalInvestments int64     `gorm:"type:bigint;not null;default:0" json:"total_investments"`
	TotalSavings     int64     `gorm:"type:bigint;not null;default:0" json:"total_savings"`
	GeneratedAt      time.Time `gorm:"not null" json:"generated_at"`
	ArtifactPath     string    `gorm:"not null" json:"artifact_path"`
	ArtifactFormat   string    `gorm:"size:4;not null" json:"artifact_format"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
