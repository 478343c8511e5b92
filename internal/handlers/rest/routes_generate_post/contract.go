//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routes_generate_post_test
package routes_generate_post

import (
	"context"

	"routeplanner/internal/service/routeplan"
	"routeplanner/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GenerateRoutes(ctx context.Context, params routeplan.GenerateParams) (*routeplan.GenerateResult, error)
}
