//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=home_get_test
package home_get

import (
	"context"

	"encomendas/internal/entities"
	"encomendas/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	HomeSummary(ctx context.Context) (*entities.HomeSummary, error)
}
