//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=export_parcels_get_test
package export_parcels_get

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
	ParcelsXML(ctx context.Context) ([]byte, error)
}
