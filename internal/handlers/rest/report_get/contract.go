//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_get_test
package report_get

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
	BuildReport(ctx context.Context, period entities.ReportPeriod) (*entities.Report, error)
}
