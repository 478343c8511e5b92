//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routeplan_test
package routeplan

import (
	"context"
	"time"

	"routeplanner/internal/entities"
	"routeplanner/pkg/logger"
)

type OrderRepository interface {
	ListRoutable(ctx context.Context, from, to time.Time) ([]entities.Order, error)
}

type ProfileRepository interface {
	GetDisplayNames(ctx context.Context, ids []string) (map[string]string, error)
}

type RouteRepository interface {
	Upsert(ctx context.Context, route entities.Route) (*entities.Route, error)
	GetByDateAndSlot(ctx context.Context, date time.Time, slot entities.TimeSlot) (*entities.Route, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type plannerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
