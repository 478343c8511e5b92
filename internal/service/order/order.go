package order

import (
	"context"
	"errors"
	"fmt"

	"routeplanner/internal/entities"
)

type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

// ProcessOrderStatusChange reacts to a status-change event from the
// marketplace stream. Statuses with no registered handler are skipped.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, event entities.OrderStatusEvent) error {
	if event.OrderID == "" || event.Status == "" {
		return fmt.Errorf("order id and status are required")
	}
	// A zero creation time would map to the 0001-01-01 wave and persist a
	// bogus route row for it.
	if event.CreatedAt.IsZero() {
		return fmt.Errorf("order %s status event has no creation time", event.OrderID)
	}

	executeFn, err := s.statusFactory.GetHandler(event.Status)
	if err != nil {
		if errors.Is(err, ErrUndefinedStatus) {
			return nil
		}
		return err
	}

	return executeFn(ctx, event)
}
