package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"routeplanner/internal/entities"
	"routeplanner/internal/service/routeplan"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert writes the route for its (route_date, time_slot) pair. A rerun for
// the same pair replaces the stored stop sequences and keeps the original id.
func (r *Repository) Upsert(ctx context.Context, routeEntity entities.Route) (*entities.Route, error) {
	if routeEntity.ID == "" {
		routeEntity.ID = uuid.NewString()
	}
	if routeEntity.Status == "" {
		routeEntity.Status = entities.DefaultRouteStatus
	}

	pickupJSON, err := stopsToJSON(routeEntity.PickupRoute)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository upsert error: %w", err)
	}
	deliveryJSON, err := stopsToJSON(routeEntity.DeliveryRoute)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository upsert error: %w", err)
	}

	query := `
		INSERT INTO delivery_routes (id, route_date, time_slot, pickup_route, delivery_route, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (route_date, time_slot) DO UPDATE
		SET pickup_route = EXCLUDED.pickup_route,
		    delivery_route = EXCLUDED.delivery_route,
		    status = EXCLUDED.status,
		    created_at = NOW()
		RETURNING id, route_date, time_slot, pickup_route, delivery_route, status, created_at
	`

	var routeModel RouteDB
	err = r.querier.QueryRow(
		ctx,
		query,
		routeEntity.ID,
		routeEntity.Date,
		routeEntity.TimeSlot.String(),
		pickupJSON,
		deliveryJSON,
		routeEntity.Status.String(),
	).Scan(
		&routeModel.ID,
		&routeModel.RouteDate,
		&routeModel.TimeSlot,
		&routeModel.PickupRoute,
		&routeModel.DeliveryRoute,
		&routeModel.Status,
		&routeModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository upsert error: %w", err)
	}

	return ToDomain(&routeModel)
}

func (r *Repository) GetByDateAndSlot(ctx context.Context, date time.Time, slot entities.TimeSlot) (*entities.Route, error) {
	query := `
		SELECT id, route_date, time_slot, pickup_route, delivery_route, status, created_at
		FROM delivery_routes
		WHERE route_date = $1 AND time_slot = $2
	`

	var routeModel RouteDB
	err := r.querier.QueryRow(ctx, query, date, slot.String()).Scan(
		&routeModel.ID,
		&routeModel.RouteDate,
		&routeModel.TimeSlot,
		&routeModel.PickupRoute,
		&routeModel.DeliveryRoute,
		&routeModel.Status,
		&routeModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, routeplan.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository get error: %w", err)
	}

	return ToDomain(&routeModel)
}
