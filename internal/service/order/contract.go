//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"routeplanner/internal/entities"
)

type (
	ExecuteFn      func(ctx context.Context, event entities.OrderStatusEvent) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
