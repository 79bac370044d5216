package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "spendly/internal/errors"
	"spendly/internal/models"
	"spendly/internal/pagination"
)

// investmentService handles investment-related business logic.
type investmentService struct {
	db *gorm.DB
}

// NewInvestmentService creates a new InvestmentServicer.
func NewInvestmentService(db *gorm.DB) InvestmentServicer {
	return &investmentService{db: db}
}

// CreateInvestment records a new investment. A zero date defaults to now;
// the month bucket is derived from the date by the model's save hook.
func (s *investmentService) CreateInvestment(
	userID uint,
	investmentType models.InvestmentType,
	amount int64,
	description string,
	date time.Time,
) (*models.Investment, error) {
	if !models.ValidInvestmentType(investmentType) {
		return nil, apperrors.ErrInvalidInvestmentType
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if date.IsZero() {
		date = time.Now()
	}

	investment := &models.Investment{
		UserID:      userID,
		Type:        investmentType,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return investment, nil
}

// GetUserInvestments returns a paginated, filtered list of the user's
// investments ordered by descending date, plus the filtered amount total.
func (s *investmentService) GetUserInvestments(
	userID uint,
	page pagination.PageRequest,
	filter InvestmentFilter,
) (*pagination.PageResponse[models.Investment], int64, error) {
	page.Defaults()

	base := s.db.Model(&models.Investment{}).Where("user_id = ?", userID)
	if filter.Type != nil {
		base = base.Where("investment_type = ?", *filter.Type)
	}
	if filter.FromDate != nil {
		base = base.Where("date >= ?", *filter.FromDate)
	}
	if filter.ToDate != nil {
		base = base.Where("date <= ?", *filter.ToDate)
	}
	if filter.Search != "" {
		base = base.Where("description LIKE ?", "%"+filter.Search+"%")
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var totalAmount int64
	if err := base.Session(&gorm.Session{}).Select("COALESCE(SUM(amount), 0)").Scan(&totalAmount).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var investments []models.Investment
	if err := base.Session(&gorm.Session{}).Order("date DESC").Scopes(pagination.Paginate(page)).Find(&investments).Error; err != nil {
		return nil, 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(investments, page.Page, page.PageSize, totalItems)
	return &result, totalAmount, nil
}

// GetInvestmentByID returns an investment by ID if it belongs to the user.
func (s *investmentService) GetInvestmentByID(userID, investmentID uint) (*models.Investment, error) {
	var investment models.Investment
	if err := s.db.Where("id = ? AND user_id = ?", investmentID, userID).First(&investment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvestmentNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &investment, nil
}

// UpdateInvestment replaces an investment's fields and re-saves the full
// record so the month bucket is recomputed from the (possibly changed) date.
func (s *investmentService) UpdateInvestment(
	userID, investmentID uint,
	investmentType models.InvestmentType,
	amount int64,
	description string,
	date time.Time,
) (*models.Investment, error) {
	if !models.ValidInvestmentType(investmentType) {
		return nil, apperrors.ErrInvalidInvestmentType
	}
	if amount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}

	investment, err := s.GetInvestmentByID(userID, investmentID)
	if err != nil {
		return nil, err
	}

	investment.Type = investmentType
	investment.Amount = amount
	investment.Description = description
	investment.Date = date

	if err := s.db.Save(investment).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return investment, nil
}

// DeleteInvestment soft-deletes an investment.
func (s *investmentService) DeleteInvestment(userID, investmentID uint) error {
	investment, err := s.GetInvestmentByID(userID, investmentID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(investment).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetRecentInvestments returns the user's most recent investments by date.
func (s *investmentService) GetRecentInvestments(userID uint, limit int) ([]models.Investment, error) {
	var investments []models.Investment
	err := s.db.Where("user_id = ?", userID).Order("date DESC").Limit(limit).Find(&investments).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return investments, nil
}
