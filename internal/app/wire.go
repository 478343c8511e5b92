//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"routeplanner/internal/handlers/rest/route_get"
	"routeplanner/internal/handlers/rest/routes_generate_post"
	"routeplanner/internal/handlers/tasks/route_generation"
	"routeplanner/internal/pkg/config"
	"routeplanner/internal/pkg/factory/wave_refresh"
	"routeplanner/internal/pkg/geo"

	orderRepo "routeplanner/internal/repository/order"
	profileRepo "routeplanner/internal/repository/profile"
	routeRepo "routeplanner/internal/repository/route"
	orderService "routeplanner/internal/service/order"
	"routeplanner/internal/service/routeplan"

	"routeplanner/pkg/background"
	"routeplanner/pkg/logger"
	"routeplanner/pkg/querier"
	"routeplanner/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	GenerationInterval time.Duration
)

type Application struct {
	ServiceRoutePlan  ServiceRoutePlan
	BackgroundWorkers *background.Worker
}

type ServiceRoutePlan interface {
	routes_generate_post.Service
	route_get.Service
}

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideGenerationInterval,
		provideDepot,

		provideOrderRepository,
		provideProfileRepository,
		provideRouteRepository,

		providePlanner,

		provideRouteGenerationTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceRoutePlan), new(*routeplan.Planner)),

		wire.Bind(new(routeplan.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(routeplan.ProfileRepository), new(*profileRepo.Repository)),
		wire.Bind(new(routeplan.RouteRepository), new(*routeRepo.Repository)),
		wire.Bind(new(routeplan.TxManager), new(*tx.Manager)),

		wire.Bind(new(route_generation.Service), new(*routeplan.Planner)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp wires the Kafka worker (cmd/worker-order-status-changed).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideDepot,

		provideOrderRepository,
		provideProfileRepository,
		provideRouteRepository,

		providePlanner,
		provideStatusHandlerFactory,
		provideOrderService,

		wire.Bind(new(routeplan.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(routeplan.ProfileRepository), new(*profileRepo.Repository)),
		wire.Bind(new(routeplan.RouteRepository), new(*routeRepo.Repository)),
		wire.Bind(new(routeplan.TxManager), new(*tx.Manager)),

		wire.Bind(new(wave_refresh.RoutePlanner), new(*routeplan.Planner)),
		wire.Bind(new(orderService.HandlerFactory), new(*wave_refresh.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideProfileRepository(querier *querier.Querier) *profileRepo.Repository {
	return profileRepo.New(querier)
}

func provideRouteRepository(querier *querier.Querier) *routeRepo.Repository {
	return routeRepo.New(querier)
}

func provideDepot(cfg *config.Config) geo.Point {
	return geo.Point{
		Latitude:  cfg.Depot.Latitude,
		Longitude: cfg.Depot.Longitude,
	}
}

func providePlanner(
	orderRepository routeplan.OrderRepository,
	profileRepository routeplan.ProfileRepository,
	routeRepository routeplan.RouteRepository,
	txManager routeplan.TxManager,
	depot geo.Point,
	log logger.Logger,
) *routeplan.Planner {
	return routeplan.New(
		orderRepository,
		profileRepository,
		routeRepository,
		txManager,
		depot,
		log,
	)
}

func provideGenerationInterval(cfg *config.Config) GenerationInterval {
	return GenerationInterval(cfg.Tasks.RouteGenerationInterval)
}

func provideStatusHandlerFactory(planner wave_refresh.RoutePlanner) *wave_refresh.StatusHandlerFactory {
	return wave_refresh.NewStatusHandlerFactory(planner)
}

func provideOrderService(handlerFactory orderService.HandlerFactory) *orderService.Service {
	return orderService.New(handlerFactory)
}

func provideRouteGenerationTask(
	log logger.Logger,
	service route_generation.Service,
	interval GenerationInterval,
) *route_generation.RouteGeneration {
	return route_generation.NewRouteGeneration(log, service, time.Duration(interval))
}

func provideTaskList(
	routeGenerationTask *route_generation.RouteGeneration,
) []background.Task {
	return []background.Task{
		routeGenerationTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
