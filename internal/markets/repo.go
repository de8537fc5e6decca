package markets

import (
	"context"

	"github.com/openmarket-kr/openmarket-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository handles market persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository binds a GORM DB to market operations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new market row.
func (r *Repository) Create(ctx context.Context, dto CreateMarketDTO) (*models.Market, error) {
	market := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(market).Error; err != nil {
		return nil, err
	}
	return market, nil
}

// FindByIDAndUser loads a market only when it is owned by the provided user.
// An absent market and a foreign-owned market both miss.
func (r *Repository) FindByIDAndUser(ctx context.Context, marketID, userID int64) (*models.Market, error) {
	var market models.Market
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", marketID, userID).
		First(&market).Error; err != nil {
		return nil, err
	}
	return &market, nil
}

// FindByOwner returns all markets owned by the provided user.
func (r *Repository) FindByOwner(ctx context.Context, userID int64) ([]models.Market, error) {
	var rows []models.Market
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteAll removes every market row. Test support only.
func (r *Repository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Market{}).Error
}
