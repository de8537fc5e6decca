package product

import (
	"github.com/openmarket-kr/openmarket-backend/pkg/datetime"
	"github.com/openmarket-kr/openmarket-backend/pkg/db/models"
	"github.com/openmarket-kr/openmarket-backend/pkg/enums"
)

// ProductSummaryDTO is the listing projection.
type ProductSummaryDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Price   int64  `json:"price"`
	Country string `json:"country"`
}

// MarketContactDTO surfaces the seller contact data on product detail.
type MarketContactDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ProductDetailDTO represents the full product payload returned to clients.
type ProductDetailDTO struct {
	ID       int64            `json:"id"`
	Name     string           `json:"name"`
	Price    int64            `json:"price"`
	Stock    int              `json:"stock"`
	Category string           `json:"category"`
	Country  string           `json:"country"`
	Deadline string           `json:"deadline"`
	Market   MarketContactDTO `json:"market"`
}

// NewProductSummaryDTO projects a persisted product onto the listing shape.
func NewProductSummaryDTO(product models.Product) ProductSummaryDTO {
	return ProductSummaryDTO{
		ID:      product.ID,
		Name:    product.Name,
		Price:   product.Price,
		Country: product.Country.String(),
	}
}

// NewProductDetailDTO builds the detail payload from the persisted model and
// its market contact.
func NewProductDetailDTO(product *models.Product, contact *MarketContact) *ProductDetailDTO {
	dto := &ProductDetailDTO{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Stock:    product.Stock,
		Category: product.Category.String(),
		Country:  product.Country.String(),
		Deadline: datetime.FormatDeadline(product.Deadline),
	}
	if contact != nil {
		dto.Market = MarketContactDTO{
			ID:    contact.ID,
			Name:  contact.Name,
			Email: contact.Email,
			Phone: contact.Phone,
		}
	}
	return dto
}

// SearchInput carries parsed listing query values into the service.
type SearchInput struct {
	Country  *enums.Country
	Category *enums.Category
	Keyword  string
	Order    enums.ProductOrder
	Page     int
}

// CreateProductInput holds the validated payload to create a product.
type CreateProductInput struct {
	Name     string
	Price    int64
	Stock    int
	Category enums.Category
	Deadline string
	MarketID int64
}

// UpdateProductInput holds the full replacement field set for a product.
type UpdateProductInput struct {
	Name     string
	Price    int64
	Stock    int
	Category enums.Category
	Deadline string
}
