//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import (
	"context"

	"encomendas/internal/entities"
	"encomendas/internal/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, customerModifyEntity entities.CustomerModify) (int64, error)
	Update(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error)
	GetByID(ctx context.Context, id int64) (*entities.Customer, error)
	GetAll(ctx context.Context, page pagination.Page) ([]entities.Customer, error)

	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	CPFExists(ctx context.Context, document string, excludeID int64) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
