package wave_refresh

import (
	"context"
	"fmt"

	"routeplanner/internal/entities"
	"routeplanner/internal/service/order"
	"routeplanner/internal/service/routeplan"
)

// StatusHandlerFactory maps order status changes to route regeneration.
// Any status that adds or removes an order from a delivery wave refreshes
// that wave's route; statuses that do not move the order are skipped.
type StatusHandlerFactory struct {
	planner RoutePlanner
}

func NewStatusHandlerFactory(planner RoutePlanner) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		planner: planner,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch {
	case status == entities.OrderPending, status == entities.OrderProcessing:
		return f.refreshWaveHandler, nil
	case status.Terminal():
		return f.refreshWaveHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) refreshWaveHandler(ctx context.Context, event entities.OrderStatusEvent) error {
	date, slot := routeplan.WaveFor(event.CreatedAt)

	dateParam := date.Format("2006-01-02")
	slotParam := slot.String()

	_, err := f.planner.GenerateRoutes(ctx, routeplan.GenerateParams{
		Date:     &dateParam,
		TimeSlot: &slotParam,
	})
	if err != nil {
		return fmt.Errorf("refresh %s %s wave for order %s: %w", dateParam, slotParam, event.OrderID, err)
	}
	return nil
}
