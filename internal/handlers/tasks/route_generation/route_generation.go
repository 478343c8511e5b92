package route_generation

import (
	"context"
	"time"

	"routeplanner/internal/service/routeplan"
	"routeplanner/pkg/logger"
)

type Service interface {
	GenerateRoutes(ctx context.Context, params routeplan.GenerateParams) (*routeplan.GenerateResult, error)
}

// RouteGeneration periodically regenerates the current wave's route so new
// orders show up without waiting for a manual trigger.
type RouteGeneration struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewRouteGeneration(log logger.Logger, service Service, interval time.Duration) *RouteGeneration {
	return &RouteGeneration{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *RouteGeneration) TTL() time.Duration {
	return r.interval
}

func (r *RouteGeneration) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	result, err := r.service.GenerateRoutes(ctxWithTimeout, routeplan.GenerateParams{})
	if err != nil {
		return err
	}

	r.log.With(
		logger.NewField("route_id", result.RouteID),
		logger.NewField("pickup_stops", result.PickupStops),
		logger.NewField("delivery_stops", result.DeliveryStops),
	).Info("scheduled route generation")

	return nil
}

func (r *RouteGeneration) Info() string {
	return "route generation"
}
