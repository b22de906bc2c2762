//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=export_customers_get_test
package export_customers_get

import (
	"context"

	"encomendas/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CustomersXML(ctx context.Context) ([]byte, error)
}
