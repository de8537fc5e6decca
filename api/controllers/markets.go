package controllers

import (
	"net/http"

	"github.com/openmarket-kr/openmarket-backend/api/middleware"
	"github.com/openmarket-kr/openmarket-backend/api/responses"
	"github.com/openmarket-kr/openmarket-backend/api/validators"
	"github.com/openmarket-kr/openmarket-backend/internal/markets"
	"github.com/openmarket-kr/openmarket-backend/pkg/enums"
	pkgerrors "github.com/openmarket-kr/openmarket-backend/pkg/errors"
	"github.com/openmarket-kr/openmarket-backend/pkg/logger"
)

type createMarketRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required,kr_mobile"`
	Country string `json:"country" validate:"required"`
}

// MarketCreate registers a market owned by the session user.
func MarketCreate(svc markets.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "market service unavailable")
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body createMarketRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		country, err := enums.ParseCountry(body.Country)
		if err != nil {
			verr := pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"country": "must be a supported country"})
			responses.WriteError(r.Context(), logg, w, verr)
			return
		}

		market, err := svc.CreateMarket(r.Context(), middleware.UserIDFromContext(r.Context()), markets.CreateMarketInput{
			Name:    body.Name,
			Email:   body.Email,
			Phone:   body.Phone,
			Country: country,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteCreated(w, map[string]any{"market": market})
	}
}
