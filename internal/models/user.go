package models

// User represents the user model in the database
type User struct {
	Base
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Relationships
	Profile     *Profile     `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Expenses    []Expense    `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Investments []Investment `gorm:"foreignKey:UserID" json:"investments,omitempty"`
	Budgets     []Budget     `gorm:"foreignKey:UserID" json:"budgets,omitempty"`
}

// DisplayName returns the profile's full name when set, otherwise the username.
func (u *User) DisplayName() string {
	if u.Profile != nil && u.Profile.FullName != "" {
		return u.Profile.FullName
	}
	return u.Username
}
