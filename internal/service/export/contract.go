//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=export_test
package export

import (
	"context"

	"encomendas/internal/entities"
)

type CustomerRepository interface {
	All(ctx context.Context) ([]entities.Customer, error)
}

type ParcelRepository interface {
	All(ctx context.Context) ([]entities.Parcel, error)
}
