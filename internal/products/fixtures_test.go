package product

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/openmarket-kr/openmarket-backend/pkg/db/models"
	"github.com/openmarket-kr/openmarket-backend/pkg/enums"
	"gorm.io/gorm"
)

func mustCreateTestUser(t *testing.T, tx *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		Email:        fmt.Sprintf("om_test_%s@example.com", uuid.NewString()),
		PasswordHash: "hash",
		Name:         "repo tester",
		Phone:        "010-1234-5678",
	}
	if err := tx.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func mustCreateTestMarket(t *testing.T, tx *gorm.DB, userID int64, country enums.Country) *models.Market {
	t.Helper()
	market := &models.Market{
		Name:    "repo market",
		Email:   fmt.Sprintf("market_%s@example.com", uuid.NewString()),
		Phone:   "010-8765-4321",
		Country: country,
		UserID:  userID,
	}
	if err := tx.Create(market).Error; err != nil {
		t.Fatalf("create market: %v", err)
	}
	return market
}

type testProductOpts struct {
	name     string
	category enums.Category
	country  enums.Country
	deadline time.Time
}

func mustCreateTestProduct(t *testing.T, tx *gorm.DB, market *models.Market, opts testProductOpts) *models.Product {
	t.Helper()
	if opts.name == "" {
		opts.name = "test product"
	}
	if opts.category == "" {
		opts.category = enums.CategoryHobby
	}
	if opts.country == "" {
		opts.country = market.Country
	}
	if opts.deadline.IsZero() {
		opts.deadline = time.Date(2030, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	record := &models.Product{
		Name:     opts.name,
		Price:    1000,
		Stock:    5,
		Category: opts.category,
		Country:  opts.country,
		Deadline: opts.deadline,
		MarketID: market.ID,
		UserID:   market.UserID,
	}
	if err := tx.Create(record).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	return record
}
