package product

import (
	"context"
	"errors"
	"strings"

	"github.com/openmarket-kr/openmarket-backend/pkg/db/models"
	"github.com/openmarket-kr/openmarket-backend/pkg/enums"
	"github.com/openmarket-kr/openmarket-backend/pkg/pagination"
	"gorm.io/gorm"
)

// SearchFilters captures the optional listing filters. Nil pointers mean the
// filter is absent; filters compose with AND.
type SearchFilters struct {
	Country  *enums.Country
	Category *enums.Category
	Keyword  string
	Order    enums.ProductOrder
	Page     int
}

// MarketContact exposes the minimal market data used by product read paths.
type MarketContact struct {
	ID    int64
	Name  string
	Email string
	Phone string
}

// Repository wires together product persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new product row.
func (r *Repository) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := r.db.WithContext(ctx).Create(product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

// Search returns one fixed-size page of non-deleted products matching the
// filters. The keyword matches when the product name contains any
// space-separated fragment as a case-sensitive substring.
func (r *Repository) Search(ctx context.Context, filters SearchFilters) ([]models.Product, error) {
	qb := r.db.WithContext(ctx).Model(&models.Product{})

	if filters.Country != nil {
		qb = qb.Where("country = ?", *filters.Country)
	}
	if filters.Category != nil {
		qb = qb.Where("category = ?", *filters.Category)
	}
	if keyword := strings.TrimSpace(filters.Keyword); keyword != "" {
		clauses := make([]string, 0, 2)
		args := make([]any, 0, 2)
		for _, fragment := range strings.Split(keyword, " ") {
			if fragment == "" {
				continue
			}
			clauses = append(clauses, `name LIKE ? ESCAPE '\'`)
			args = append(args, "%"+escapeLike(fragment)+"%")
		}
		if len(clauses) > 0 {
			qb = qb.Where("("+strings.Join(clauses, " OR ")+")", args...)
		}
	}

	switch filters.Order {
	case enums.ProductOrderDeadline:
		qb = qb.Order("deadline ASC")
	default:
		qb = qb.Order("id DESC")
	}

	var rows []models.Product
	err := qb.
		Limit(pagination.PageSize).
		Offset(pagination.Offset(filters.Page)).
		Find(&rows).
		Error
	return rows, err
}

// FindDetail loads a non-deleted product together with its market contact.
// A missing or deleted product yields nil values without an error.
func (r *Repository) FindDetail(ctx context.Context, id int64) (*models.Product, *MarketContact, error) {
	var product models.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	var market models.Market
	if err := r.db.WithContext(ctx).First(&market, "id = ?", product.MarketID).Error; err != nil {
		return &product, nil, err
	}
	return &product, &MarketContact{
		ID:    market.ID,
		Name:  market.Name,
		Email: market.Email,
		Phone: market.Phone,
	}, nil
}

// UpdateOwned applies the field map to the product in a single UPDATE filtered
// by id, owner, and the soft-delete marker. Returns the number of rows hit.
func (r *Repository) UpdateOwned(ctx context.Context, id, userID int64, fields map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

// SoftDeleteOwned marks the product deleted in a single filtered UPDATE.
// Returns the number of rows hit; already-deleted rows never match.
func (r *Repository) SoftDeleteOwned(ctx context.Context, id, userID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Product{})
	return result.RowsAffected, result.Error
}

// DeleteAll hard-removes every product row. Test support only.
func (r *Repository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Unscoped().
		Where("1 = 1").
		Delete(&models.Product{}).
		Error
}

func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
