package handler

import (
	"log/slog"
	"net/http"

	"haulquote/internal/delivery/http/response"
	"haulquote/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuoteHandlerParams holds dependencies for QuoteHandler, injected by Fx.
type QuoteHandlerParams struct {
	fx.In

	QuoteUC usecase.QuoteUsecase
	Logger  *slog.Logger
}

// QuoteHandler serves transport quote requests.
type QuoteHandler struct {
	quoteUC usecase.QuoteUsecase
	logger  *slog.Logger
}

// NewQuoteHandler is the constructor for QuoteHandler
func NewQuoteHandler(params QuoteHandlerParams) *QuoteHandler {
	return &QuoteHandler{
		quoteUC: params.QuoteUC,
		logger:  params.Logger,
	}
}

// QuoteRequestBody is the request body for a transport quote. An omitted
// vehicle_count means a single vehicle; zero or negative counts are
// rejected rather than coerced.
type QuoteRequestBody struct {
	OriginRegion string `json:"origin_region" validate:"required"`
	OriginCity   string `json:"origin_city" validate:"required"`
	DestRegion   string `json:"dest_region" validate:"required"`
	DestCity     string `json:"dest_city" validate:"required"`
	Enclosed     bool   `json:"enclosed"`
	Inoperable   bool   `json:"inoperable"`
	Expedited    bool   `json:"expedited"`
	VehicleCount *int   `json:"vehicle_count" validate:"omitempty,min=1"`
}

// Estimate handles POST /api/quote
func (h *QuoteHandler) Estimate(c echo.Context) error {
	var req QuoteRequestBody
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_REQUEST_BODY", "failed to parse request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	options := usecase.DefaultQuoteOptions()
	options.Enclosed = req.Enclosed
	options.Inoperable = req.Inoperable
	options.Expedited = req.Expedited
	if req.VehicleCount != nil {
		options.VehicleCount = *req.VehicleCount
	}

	quote, err := h.quoteUC.Estimate(c.Request().Context(), usecase.QuoteRequest{
		OriginRegion: req.OriginRegion,
		OriginCity:   req.OriginCity,
		DestRegion:   req.DestRegion,
		DestCity:     req.DestCity,
		Options:      options,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, quote, "Quote generated")
}
