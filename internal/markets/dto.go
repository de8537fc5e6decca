package markets

import (
	"time"

	"github.com/openmarket-kr/openmarket-backend/pkg/db/models"
	"github.com/openmarket-kr/openmarket-backend/pkg/enums"
)

// MarketDTO is the transport shape for a seller market.
type MarketDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Country   string    `json:"country"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMarketDTO holds the data required by the repo to persist a market.
type CreateMarketDTO struct {
	Name    string
	Email   string
	Phone   string
	Country enums.Country
	UserID  int64
}

func FromModel(m *models.Market) *MarketDTO {
	if m == nil {
		return nil
	}

	return &MarketDTO{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Country:   m.Country.String(),
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func (c CreateMarketDTO) ToModel() *models.Market {
	return &models.Market{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Country: c.Country,
		UserID:  c.UserID,
	}
}
