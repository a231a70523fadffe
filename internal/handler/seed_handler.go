package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"viewify/internal/errors"
	"viewify/internal/repository"
	"viewify/internal/seed"
)

// SeedHandler handles the dev-only demo catalog endpoint.
type SeedHandler struct {
	products repository.ProductRepository
}

// NewSeedHandler creates a new seed handler.
func NewSeedHandler(products repository.ProductRepository) *SeedHandler {
	return &SeedHandler{products: products}
}

// SeedProductsResponse represents the seed response.
type SeedProductsResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// SeedProducts godoc
// @Summary Seed the demo catalog
// @Tags seed
// @Produce json
// @Success 200 {object} SeedProductsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /seed/products [get]
func (h *SeedHandler) SeedProducts(c echo.Context) error {
	count, err := seed.Run(c.Request().Context(), h.products, nil)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SeedProductsResponse{
		Message: "demo catalog seeded",
		Count:   count,
	})
}
