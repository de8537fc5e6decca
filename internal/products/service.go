package product

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openmarket-kr/openmarket-backend/pkg/datetime"
	"github.com/openmarket-kr/openmarket-backend/pkg/db/models"
	pkgerrors "github.com/openmarket-kr/openmarket-backend/pkg/errors"
	"github.com/openmarket-kr/openmarket-backend/pkg/logger"
	"gorm.io/gorm"
)

const (
	notFoundMarketMessage  = "market not found"
	notFoundProductMessage = "product not found"
)

// Service exposes product lifecycle operations.
type Service interface {
	CreateProduct(ctx context.Context, userID int64, input CreateProductInput) (*ProductDetailDTO, error)
	SearchProducts(ctx context.Context, input SearchInput) ([]ProductSummaryDTO, error)
	GetProductDetail(ctx context.Context, productID int64) (*ProductDetailDTO, error)
	UpdateProduct(ctx context.Context, userID, productID int64, input UpdateProductInput) error
	DeleteProduct(ctx context.Context, userID, productID int64) error
}

type marketFinder interface {
	FindByIDAndUser(ctx context.Context, marketID, userID int64) (*models.Market, error)
}

// service implements the product service.
type service struct {
	repo    *Repository
	markets marketFinder
	logg    *logger.Logger
}

// NewService constructs a product service instance.
func NewService(repo *Repository, markets marketFinder, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if markets == nil {
		return nil, fmt.Errorf("market repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, markets: markets, logg: logg}, nil
}

// CreateProduct verifies market ownership, snapshots the market country, and
// persists the listing. A market that does not exist or belongs to another
// user is reported identically.
func (s *service) CreateProduct(ctx context.Context, userID int64, input CreateProductInput) (*ProductDetailDTO, error) {
	market, err := s.markets.FindByIDAndUser(ctx, input.MarketID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, notFoundMarketMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load market")
	}

	deadline, err := s.parseDeadline(input.Deadline)
	if err != nil {
		return nil, err
	}

	record := &models.Product{
		Name:     input.Name,
		Price:    input.Price,
		Stock:    input.Stock,
		Category: input.Category,
		Country:  market.Country,
		Deadline: deadline,
		MarketID: market.ID,
		UserID:   userID,
	}
	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert product")
	}

	ctx = s.logg.WithMarketID(ctx, market.ID)
	s.logg.Info(ctx, "product created")

	return NewProductDetailDTO(created, &MarketContact{
		ID:    market.ID,
		Name:  market.Name,
		Email: market.Email,
		Phone: market.Phone,
	}), nil
}

// SearchProducts returns one page of listing summaries.
func (s *service) SearchProducts(ctx context.Context, input SearchInput) ([]ProductSummaryDTO, error) {
	rows, err := s.repo.Search(ctx, SearchFilters{
		Country:  input.Country,
		Category: input.Category,
		Keyword:  input.Keyword,
		Order:    input.Order,
		Page:     input.Page,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "search products")
	}

	summaries := make([]ProductSummaryDTO, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, NewProductSummaryDTO(row))
	}
	return summaries, nil
}

// GetProductDetail loads the detail payload. Missing and deleted products
// yield a nil DTO without an error; the HTTP layer serializes that as a null
// product body.
func (s *service) GetProductDetail(ctx context.Context, productID int64) (*ProductDetailDTO, error) {
	record, contact, err := s.repo.FindDetail(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product detail")
	}
	if record == nil {
		return nil, nil
	}
	return NewProductDetailDTO(record, contact), nil
}

// UpdateProduct rewrites the mutable fields in one UPDATE filtered by id and
// owner. Zero matched rows means the product is missing, deleted, or owned by
// someone else, all reported identically.
func (s *service) UpdateProduct(ctx context.Context, userID, productID int64, input UpdateProductInput) error {
	deadline, err := s.parseDeadline(input.Deadline)
	if err != nil {
		return err
	}

	rows, err := s.repo.UpdateOwned(ctx, productID, userID, map[string]any{
		"name":     input.Name,
		"price":    input.Price,
		"stock":    input.Stock,
		"category": input.Category,
		"deadline": deadline,
	})
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update product")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundProductMessage)
	}
	return nil
}

// DeleteProduct marks the product deleted with the same id+owner filter as
// UpdateProduct. Deletion is logical and one-way.
func (s *service) DeleteProduct(ctx context.Context, userID, productID int64) error {
	rows, err := s.repo.SoftDeleteOwned(ctx, productID, userID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	if rows == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, notFoundProductMessage)
	}
	return nil
}

func (s *service) parseDeadline(value string) (time.Time, error) {
	deadline, err := datetime.ParseDeadline(value)
	if err != nil {
		return time.Time{}, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"deadline": "deadline must match YYYY-MM-DD HH:mm"})
	}
	return deadline, nil
}
