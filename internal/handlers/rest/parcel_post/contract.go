//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_post_test
package parcel_post

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
	CreateParcel(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error)
}
