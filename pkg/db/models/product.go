package models

import (
	"time"

	"github.com/openmarket-kr/openmarket-backend/pkg/enums"
	"gorm.io/gorm"
)

// Product represents a market listing. The auto-increment ID doubles as the
// creation-order tiebreaker for newest-first listings. Country is copied from
// the owning market at creation time and never re-derived.
type Product struct {
	ID        int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string         `gorm:"column:name;not null"`
	Price     int64          `gorm:"column:price;not null"`
	Stock     int            `gorm:"column:stock;not null"`
	Category  enums.Category `gorm:"column:category;type:text;not null"`
	Country   enums.Country  `gorm:"column:country;type:text;not null"`
	Deadline  time.Time      `gorm:"column:deadline;not null"`
	MarketID  int64          `gorm:"column:market_id;not null;index"`
	UserID    int64          `gorm:"column:user_id;not null;index"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}
