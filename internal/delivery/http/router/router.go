// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"haulquote/internal/delivery/http/middleware"
	"haulquote/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	QuoteHandler        *handler.QuoteHandler
	CatalogHandler      *handler.CatalogHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	quoteHandler   *handler.QuoteHandler
	catalogHandler *handler.CatalogHandler
	requestID      *middleware.RequestIDMiddleware
	loggerMw       *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		quoteHandler:   params.QuoteHandler,
		catalogHandler: params.CatalogHandler,
		requestID:      params.RequestIDMiddleware,
		loggerMw:       params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestID.Process)
	e.Use(r.loggerMw.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.POST("/quote", r.quoteHandler.Estimate)
		api.GET("/regions", r.catalogHandler.ListRegions)
		api.GET("/regions/:code", r.catalogHandler.GetRegion)
	}
}
