//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_get_test
package parcel_get

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
	GetParcel(ctx context.Context, id int64) (*entities.Parcel, error)
}
