package lookup

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"encomendas/internal/entities"
	"encomendas/internal/pkg/factory/lookup_match"
	customerrepo "encomendas/internal/repository/customer"
	parcelrepo "encomendas/internal/repository/parcel"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository serves the public lookup. The partial strategy relies on
// the unaccent extension installed by the migrations.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) FindCustomers(ctx context.Context, mode lookup_match.Mode, raw, cleaned string) ([]entities.Customer, error) {
	var query string
	var args []interface{}

	switch mode {
	case lookup_match.ModePartial:
		query = `
			SELECT id, name, cpf, rg, gender, phone, email, created_at
			FROM customers
			WHERE unaccent(lower(name)) LIKE unaccent(lower('%' || $1 || '%'))
			   OR cpf LIKE '%' || $2 || '%'
			   OR rg LIKE '%' || $2 || '%'
			ORDER BY lower(name), id`
		args = []interface{}{raw, cleaned}
	default:
		query = `
			SELECT id, name, cpf, rg, gender, phone, email, created_at
			FROM customers
			WHERE cpf IN ($1, $2) OR rg IN ($1, $2)
			ORDER BY lower(name), id`
		args = []interface{}{raw, cleaned}
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected lookup repository find customers error: %w", err)
	}
	defer rows.Close()

	customerModels := make([]customerrepo.CustomerDB, 0, 4)
	for rows.Next() {
		var customerModel customerrepo.CustomerDB
		err := rows.Scan(
			&customerModel.ID,
			&customerModel.Name,
			&customerModel.CPF,
			&customerModel.RG,
			&customerModel.Gender,
			&customerModel.Phone,
			&customerModel.Email,
			&customerModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected lookup repository find customers error: %w", err)
		}
		customerModels = append(customerModels, customerModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected lookup repository find customers error: %w", err)
	}

	return customerrepo.ToDomainList(customerModels), nil
}

func (r *Repository) PendingParcels(ctx context.Context, customerID int64) ([]entities.Parcel, error) {
	query := `
		SELECT id, customer_id, description, note, arrived_at, delivered_at,
			base_fee, computed_fee, charged_fee, status, discarded, created_at, updated_at
		FROM parcels
		WHERE customer_id = $1 AND status = 'PENDENTE' AND NOT discarded
		ORDER BY arrived_at, id`

	rows, err := r.querier.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected lookup repository pending parcels error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]parcelrepo.ParcelDB, 0, 4)
	for rows.Next() {
		var parcelModel parcelrepo.ParcelDB
		err := rows.Scan(
			&parcelModel.ID,
			&parcelModel.CustomerID,
			&parcelModel.Description,
			&parcelModel.Note,
			&parcelModel.ArrivedAt,
			&parcelModel.DeliveredAt,
			&parcelModel.BaseFee,
			&parcelModel.ComputedFee,
			&parcelModel.ChargedFee,
			&parcelModel.Status,
			&parcelModel.Discarded,
			&parcelModel.CreatedAt,
			&parcelModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected lookup repository pending parcels error: %w", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected lookup repository pending parcels error: %w", err)
	}

	return parcelrepo.ToDomainList(parcelModels), nil
}
