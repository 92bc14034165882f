package main

import (
	"context"
	"log/slog"
	"os"

	"hokhau/config"
	"hokhau/internal/delivery"
	"hokhau/internal/delivery/http"
	"hokhau/internal/delivery/http/router/handler"
	"hokhau/internal/delivery/middleware"
	"hokhau/internal/domain/service"
	logs "hokhau/internal/infra/log"
	"hokhau/internal/infra/metrics"
	"hokhau/internal/infra/persistence/postgres"
	"hokhau/internal/usecase/impl"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
		postgres.New,
		prometheus.NewRegistry,
		newEngineMetrics,
	)
}

// newEngineMetrics binds the engine counters to the served registry.
func newEngineMetrics(registry *prometheus.Registry) *metrics.Engine {
	return metrics.New(registry)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewHouseholdRepository,
			postgres.NewCitizenRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			service.NewDocumentPolicy,
			impl.NewHeadshipChecker,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewHouseholdService,
			impl.NewCitizenService,
			impl.NewTransferService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewHouseholdHandler,
			handler.NewCitizenHandler,
			handler.NewTransferHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
