package product

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/openmarket-kr/openmarket-backend/internal/markets"
	"github.com/openmarket-kr/openmarket-backend/pkg/db/models"
	"github.com/openmarket-kr/openmarket-backend/pkg/enums"
	pkgerrors "github.com/openmarket-kr/openmarket-backend/pkg/errors"
	"github.com/openmarket-kr/openmarket-backend/pkg/logger"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestService(t *testing.T, conn *gorm.DB) Service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "products-test", Output: io.Discard})
	svc, err := NewService(NewRepository(conn), markets.NewRepository(conn), logg)
	require.NoError(t, err)
	return svc
}

func TestCreateProduct(t *testing.T) {
	conn := openTestDB(t)
	svc := newTestService(t, conn)
	ctx := context.Background()

	user := mustCreateTestUser(t, conn)
	market := mustCreateTestMarket(t, conn, user.ID, enums.CountryGermany)

	dto, err := svc.CreateProduct(ctx, user.ID, CreateProductInput{
		Name:     "leather wallet",
		Price:    45000,
		Stock:    20,
		Category: enums.CategoryClothing,
		Deadline: "2030-03-15 18:00",
		MarketID: market.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, dto.ID)
	require.Equal(t, "leather wallet", dto.Name)
	// The listing country comes from the market, not the request.
	require.Equal(t, "GERMANY", dto.Country)
	require.Equal(t, "2030-03-15 18:00", dto.Deadline)
	require.Equal(t, market.ID, dto.Market.ID)
	require.Equal(t, market.Email, dto.Market.Email)
}

func TestCreateProductRejectsForeignMarket(t *testing.T) {
	conn := openTestDB(t)
	svc := newTestService(t, conn)
	ctx := context.Background()

	owner := mustCreateTestUser(t, conn)
	stranger := mustCreateTestUser(t, conn)
	market := mustCreateTestMarket(t, conn, owner.ID, enums.CountryKorea)

	cases := []struct {
		name     string
		userID   int64
		marketID int64
	}{
		{name: "foreign market", userID: stranger.ID, marketID: market.ID},
		{name: "missing market", userID: owner.ID, marketID: market.ID + 1000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, tc.userID, CreateProductInput{
				Name:     "blocked",
				Price:    1000,
				Stock:    1,
				Category: enums.CategoryHobby,
				Deadline: "2030-01-01 12:00",
				MarketID: tc.marketID,
			})
			require.Error(t, err)
			typed := pkgerrors.As(err)
			require.NotNil(t, typed)
			require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
			require.Equal(t, notFoundMarketMessage, typed.Message())
		})
	}
}

func TestCreateProductRejectsBadDeadline(t *testing.T) {
	conn := openTestDB(t)
	svc := newTestService(t, conn)
	ctx := context.Background()

	user := mustCreateTestUser(t, conn)
	market := mustCreateTestMarket(t, conn, user.ID, enums.CountryKorea)

	_, err := svc.CreateProduct(ctx, user.ID, CreateProductInput{
		Name:     "bad deadline",
		Price:    1000,
		Stock:    1,
		Category: enums.CategoryHobby,
		Deadline: "2030-01-01",
		MarketID: market.ID,
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeValidation, typed.Code())
	require.Contains(t, typed.Details(), "deadline")
}

func TestGetProductDetailMissing(t *testing.T) {
	conn := openTestDB(t)
	svc := newTestService(t, conn)
	ctx := context.Background()

	// A missing product is not an error; the response carries a null body.
	dto, err := svc.GetProductDetail(ctx, 99999)
	require.NoError(t, err)
	require.Nil(t, dto)
}

func TestUpdateProduct(t *testing.T) {
	conn := openTestDB(t)
	svc := newTestService(t, conn)
	ctx := context.Background()

	user := mustCreateTestUser(t, conn)
	market := mustCreateTestMarket(t, conn, user.ID, enums.CountryKorea)
	created := mustCreateTestProduct(t, conn, market, testProductOpts{name: "old name"})

	err := svc.UpdateProduct(ctx, user.ID, created.ID, UpdateProductInput{
		Name:     "new name",
		Price:    7700,
		Stock:    3,
		Category: enums.CategoryJewelry,
		Deadline: "2031-12-24 09:30",
	})
	require.NoError(t, err)

	dto, err := svc.GetProductDetail(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, dto)
	require.Equal(t, "new name", dto.Name)
	require.EqualValues(t, 7700, dto.Price)
	require.Equal(t, "JEWELRY", dto.Category)
	require.Equal(t, "2031-12-24 09:30", dto.Deadline)
}

func TestUpdateProductNotFound(t *testing.T) {
	conn := openTestDB(t)
	svc := newTestService(t, conn)
	ctx := context.Background()

	owner := mustCreateTestUser(t, conn)
	stranger := mustCreateTestUser(t, conn)
	market := mustCreateTestMarket(t, conn, owner.ID, enums.CountryKorea)
	created := mustCreateTestProduct(t, conn, market, testProductOpts{})

	input := UpdateProductInput{
		Name:     "nope",
		Price:    100,
		Stock:    1,
		Category: enums.CategoryHobby,
		Deadline: "2030-01-01 12:00",
	}

	err := svc.UpdateProduct(ctx, stranger.ID, created.ID, input)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	require.Equal(t, notFoundProductMessage, typed.Message())

	err = svc.UpdateProduct(ctx, owner.ID, created.ID+1000, input)
	require.Error(t, err)
	require.Equal(t, pkgerrors.CodeNotFound, pkgerrors.As(err).Code())
}

func TestDeleteProduct(t *testing.T) {
	conn := openTestDB(t)
	svc := newTestService(t, conn)
	ctx := context.Background()

	user := mustCreateTestUser(t, conn)
	market := mustCreateTestMarket(t, conn, user.ID, enums.CountryKorea)
	created := mustCreateTestProduct(t, conn, market, testProductOpts{})

	require.NoError(t, svc.DeleteProduct(ctx, user.ID, created.ID))

	dto, err := svc.GetProductDetail(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, dto)

	err = svc.DeleteProduct(ctx, user.ID, created.ID)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeNotFound, typed.Code())
	require.Equal(t, notFoundProductMessage, typed.Message())
}

type failingMarketFinder struct {
	err error
}

func (f failingMarketFinder) FindByIDAndUser(ctx context.Context, marketID, userID int64) (*models.Market, error) {
	return nil, f.err
}

func TestCreateProductMarketLookupFailure(t *testing.T) {
	conn := openTestDB(t)
	logg := logger.New(logger.Options{ServiceName: "products-test", Output: io.Discard})
	finder := failingMarketFinder{err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")}
	svc, err := NewService(NewRepository(conn), finder, logg)
	require.NoError(t, err)

	_, err = svc.CreateProduct(context.Background(), 1, CreateProductInput{
		Name:     "unreachable",
		Price:    1000,
		Stock:    1,
		Category: enums.CategoryHobby,
		Deadline: "2030-01-01 12:00",
		MarketID: 1,
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	require.Equal(t, pkgerrors.CodeDependency, typed.Code())
	require.ErrorIs(t, err, finder.err)
}
