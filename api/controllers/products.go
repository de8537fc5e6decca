package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/openmarket-kr/openmarket-backend/api/middleware"
	"github.com/openmarket-kr/openmarket-backend/api/responses"
	"github.com/openmarket-kr/openmarket-backend/api/validators"
	product "github.com/openmarket-kr/openmarket-backend/internal/products"
	"github.com/openmarket-kr/openmarket-backend/pkg/enums"
	pkgerrors "github.com/openmarket-kr/openmarket-backend/pkg/errors"
	"github.com/openmarket-kr/openmarket-backend/pkg/logger"
)

type createProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price" validate:"required,gt=0"`
	Stock    int    `json:"stock" validate:"gte=0"`
	Category string `json:"category" validate:"required"`
	Deadline string `json:"deadline" validate:"required,deadline"`
	MarketID int64  `json:"marketId" validate:"required,gt=0"`
}

type updateProductRequest struct {
	Name     string `json:"name" validate:"required"`
	Price    int64  `json:"price" validate:"required,gt=0"`
	Stock    int    `json:"stock" validate:"gte=0"`
	Category string `json:"category" validate:"required"`
	Deadline string `json:"deadline" validate:"required,deadline"`
}

// ProductCreate registers a listing under one of the caller's markets.
func ProductCreate(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body createProductRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := enums.ParseCategory(body.Category)
		if err != nil {
			verr := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"category": "must be a supported category"})
			responses.WriteError(r.Context(), logg, w, verr)
			return
		}

		created, err := svc.CreateProduct(r.Context(), middleware.UserIDFromContext(r.Context()), product.CreateProductInput{
			Name:     body.Name,
			Price:    body.Price,
			Stock:    body.Stock,
			Category: category,
			Deadline: body.Deadline,
			MarketID: body.MarketID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteCreated(w, map[string]any{"product": created})
	}
}

// ProductSearch lists one page of products matching the query filters.
// Every invalid query parameter is reported, not just the first.
func ProductSearch(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := parseSearchQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		products, err := svc.SearchProducts(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"products": products})
	}
}

// ProductDetail returns the full payload for one listing. A missing or
// deleted product is a successful request with a null product body.
func ProductDetail(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		detail, err := svc.GetProductDetail(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"product": detail})
	}
}

// ProductUpdate replaces the mutable fields of a listing owned by the caller.
func ProductUpdate(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body updateProductRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		category, err := enums.ParseCategory(body.Category)
		if err != nil {
			verr := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"category": "must be a supported category"})
			responses.WriteError(r.Context(), logg, w, verr)
			return
		}

		err = svc.UpdateProduct(r.Context(), middleware.UserIDFromContext(r.Context()), productID, product.UpdateProductInput{
			Name:     body.Name,
			Price:    body.Price,
			Stock:    body.Stock,
			Category: category,
			Deadline: body.Deadline,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}

// ProductDelete soft-deletes a listing owned by the caller.
func ProductDelete(svc product.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := parseProductID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteProduct(r.Context(), middleware.UserIDFromContext(r.Context()), productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteNoContent(w)
	}
}

func parseProductID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "productId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"productId": "must be a positive integer"})
	}
	return id, nil
}

func parseSearchQuery(r *http.Request) (product.SearchInput, error) {
	query := r.URL.Query()
	details := map[string]string{}
	input := product.SearchInput{
		Order:   enums.ProductOrderNew,
		Page:    1,
		Keyword: strings.TrimSpace(query.Get("keyword")),
	}

	if raw := strings.TrimSpace(query.Get("country")); raw != "" {
		country, err := enums.ParseCountry(raw)
		if err != nil {
			details["country"] = "must be a supported country"
		} else {
			input.Country = &country
		}
	}

	if raw := strings.TrimSpace(query.Get("category")); raw != "" {
		category, err := enums.ParseCategory(raw)
		if err != nil {
			details["category"] = "must be a supported category"
		} else {
			input.Category = &category
		}
	}

	if raw := strings.TrimSpace(query.Get("order")); raw != "" {
		order, err := enums.ParseProductOrder(raw)
		if err != nil {
			details["order"] = "must be one of NEW, DEADLINE"
		} else {
			input.Order = order
		}
	}

	if raw := strings.TrimSpace(query.Get("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			details["page"] = "must be a positive integer"
		} else {
			input.Page = page
		}
	}

	if len(details) > 0 {
		return product.SearchInput{}, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return input, nil
}
