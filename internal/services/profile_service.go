package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "spendly/internal/errors"
	"spendly/internal/models"
)

// profileService handles profile-related business logic.
type profileService struct {
	db *gorm.DB
}

// NewProfileService creates a new ProfileServicer.
func NewProfileService(db *gorm.DB) ProfileServicer {
	return &profileService{db: db}
}

// GetOrCreateProfile returns the user's profile, creating an empty one if
// it does not exist yet. Registration creates profiles eagerly, but older
// accounts may predate that.
func (s *profileService) GetOrCreateProfile(userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := s.db.Where(models.Profile{UserID: userID}).FirstOrCreate(&profile).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &profile, nil
}

// UpdateProfile updates the provided profile fields.
func (s *profileService) UpdateProfile(
	userID uint,
	fullName *string,
	monthlySalary *int64,
	phoneNumber *string,
	dateOfBirth *time.Time,
	address *string,
) (*models.Profile, error) {
	profile, err := s.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fullName != nil {
		updates["full_name"] = *fullName
	}
	if monthlySalary != nil {
		if *monthlySalary < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "monthly_salary cannot be negative")
		}
		updates["monthly_salary"] = *monthlySalary
	}
	if phoneNumber != nil {
		updates["phone_number"] = *phoneNumber
	}
	if dateOfBirth != nil {
		updates["date_of_birth"] = dateOfBirth
	}
	if address != nil {
		updates["address"] = *address
	}

	if len(updates) > 0 {
		if err := s.db.Model(profile).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return profile, nil
}
