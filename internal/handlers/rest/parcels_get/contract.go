//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcels_get_test
package parcels_get

import (
	"context"

	"encomendas/internal/entities"
	"encomendas/internal/pkg/pagination"
	"encomendas/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetParcels(ctx context.Context, view entities.ParcelListView, page pagination.Page) ([]entities.Parcel, *entities.StatusCounts, error)
}
