package models

import "time"

// Profile holds per-user settings, one row per user. The monthly salary is
// the income figure used for every month's totals; the system does not
// track month-specific income beyond it.
type Profile struct {
	Base
	UserID        uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName      string     `gorm:"size:100" json:"full_name"`
	MonthlySalary int64      `gorm:"not null;default:0" json:"monthly_salary"`
	PhoneNumber   string     `gorm:"size:15" json:"phone_number"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	Address       string     `json:"address"`
}
