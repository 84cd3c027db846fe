package main

import (
	"context"
	"log/slog"

	"haulquote/config"
	"haulquote/internal/delivery"
	"haulquote/internal/delivery/http"
	"haulquote/internal/delivery/http/middleware"
	"haulquote/internal/delivery/http/router/handler"
	"haulquote/internal/infra/catalog"
	logs "haulquote/internal/infra/log"
	"haulquote/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Delivery delivery.Delivery
	Logger   *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		fx.Provide(http.NewServer),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		catalog.New,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewQuoteService,
			impl.NewCatalogService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewLoggerMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewQuoteHandler,
			handler.NewCatalogHandler,
		),
	)
}

func startServer(params startServerParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := params.Delivery.Serve(context.Background()); err != nil {
					params.Logger.Error("server stopped", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}
