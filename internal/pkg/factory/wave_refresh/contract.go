//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wave_refresh_test
package wave_refresh

import (
	"context"

	"routeplanner/internal/service/routeplan"
)

type RoutePlanner interface {
	GenerateRoutes(ctx context.Context, params routeplan.GenerateParams) (*routeplan.GenerateResult, error)
}
