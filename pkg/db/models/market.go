package models

import (
	"time"

	"github.com/openmarket-kr/openmarket-backend/pkg/enums"
)

// Market represents a seller storefront owned by a user.
type Market struct {
	ID        int64         `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string        `gorm:"column:name;not null"`
	Email     string        `gorm:"column:email;not null"`
	Phone     string        `gorm:"column:phone;not null"`
	Country   enums.Country `gorm:"column:country;type:text;not null"`
	UserID    int64         `gorm:"column:user_id;not null;index"`
	CreatedAt time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}
