package markets

import (
	"context"
	"fmt"

	"github.com/openmarket-kr/openmarket-backend/pkg/enums"
	pkgerrors "github.com/openmarket-kr/openmarket-backend/pkg/errors"
	"github.com/openmarket-kr/openmarket-backend/pkg/logger"
)

// Service exposes market onboarding operations.
type Service interface {
	CreateMarket(ctx context.Context, userID int64, input CreateMarketInput) (*MarketDTO, error)
}

// CreateMarketInput holds the validated payload to register a market.
type CreateMarketInput struct {
	Name    string
	Email   string
	Phone   string
	Country enums.Country
}

type service struct {
	repo *Repository
	logg *logger.Logger
}

// NewService constructs a market service instance.
func NewService(repo *Repository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("market repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, logg: logg}, nil
}

// CreateMarket registers a market owned by the authenticated user. Users may
// register any number of markets; duplicates are not rejected.
func (s *service) CreateMarket(ctx context.Context, userID int64, input CreateMarketInput) (*MarketDTO, error) {
	market, err := s.repo.Create(ctx, CreateMarketDTO{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Country: input.Country,
		UserID:  userID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "insert market")
	}

	ctx = s.logg.WithMarketID(ctx, market.ID)
	s.logg.Info(ctx, "market registered")

	return FromModel(market), nil
}
