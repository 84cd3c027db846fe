package handler

import (
	"log/slog"
	"net/http"

	"haulquote/internal/delivery/http/response"
	"haulquote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the geography catalog.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListRegions handles GET /api/regions
func (h *CatalogHandler) ListRegions(c echo.Context) error {
	regions := h.catalogUC.Regions(c.Request().Context())

	return response.Success(c, http.StatusOK, regions, "")
}

// GetRegion handles GET /api/regions/:code
func (h *CatalogHandler) GetRegion(c echo.Context) error {
	code := c.Param("code")

	region, err := h.catalogUC.Region(c.Request().Context(), code)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, region, "")
}
