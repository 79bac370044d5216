package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendly/internal/errors"
	"spendly/internal/services"
)

// ProfileHandler handles profile-related requests.
type ProfileHandler struct {
	profileService services.ProfileServicer
	auditService   services.AuditServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService services.ProfileServicer, auditService services.AuditServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, auditService: auditService}
}

// UpdateProfileRequest represents the payload for updating a profile.
// All fields are optional; absent fields are left unchanged.
type UpdateProfileRequest struct {
	FullName      *string `json:"full_name" binding:"omitempty,max=100"`
	MonthlySalary *int64  `json:"monthly_salary" binding:"omitempty,gte=0"`
	PhoneNumber   *string `json:"phone_number" binding:"omitempty,max=15"`
	DateOfBirth   *string `json:"date_of_birth"`
	Address       *string `json:"address" binding:"omitempty,max=255"`
}

// GetProfile returns the user's profile
// @Summary     Get profile
// @Description Get the authenticated user's profile, creating an empty one on first access
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.Profile "Profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.GetOrCreateProfile(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile updates the user's profile
// @Summary     Update profile
// @Description Update the authenticated user's profile fields
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateProfileRequest true "Profile fields to update"
// @Success     200 {object} models.Profile "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var dateOfBirth *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		parsed, parseErr := time.Parse("2006-01-02", *req.DateOfBirth)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date_of_birth, use YYYY-MM-DD"))
			return
		}
		dateOfBirth = &parsed
	}

	profile, err := h.profileService.UpdateProfile(userID, req.FullName, req.MonthlySalary, req.PhoneNumber, dateOfBirth, req.Address)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_PROFILE", "profile", profile.ID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
