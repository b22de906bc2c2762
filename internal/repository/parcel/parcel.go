package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"encomendas/internal/entities"
	"encomendas/internal/pkg/pagination"
	"encomendas/internal/repository"
	"encomendas/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const parcelColumns = `id, customer_id, description, note, arrived_at, delivered_at,
		base_fee, computed_fee, charged_fee, status, discarded, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelEntity entities.Parcel) (*entities.Parcel, error) {
	query := `
		INSERT INTO parcels (customer_id, description, note, arrived_at, delivered_at,
			base_fee, computed_fee, charged_fee, status, discarded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + parcelColumns

	var parcelModel ParcelDB
	err := r.querier.QueryRow(
		ctx,
		query,
		parcelEntity.CustomerID,
		parcelEntity.Description,
		parcelEntity.Note,
		parcelEntity.ArrivedAt,
		parcelEntity.DeliveredAt,
		parcelEntity.BaseFee,
		parcelEntity.ComputedFee,
		parcelEntity.ChargedFee,
		parcelEntity.Status.String(),
		parcelEntity.Discarded,
	).Scan(scanTargets(&parcelModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, parcel.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, parcel.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

// Save writes the full row. Nullable columns follow the entity exactly,
// so clearing delivery data on a pending save actually reaches the
// database.
func (r *Repository) Save(ctx context.Context, parcelEntity entities.Parcel) (*entities.Parcel, error) {
	query := `
		UPDATE parcels
		SET customer_id = $2,
			description = $3,
			note = $4,
			arrived_at = $5,
			delivered_at = $6,
			base_fee = $7,
			computed_fee = $8,
			charged_fee = $9,
			status = $10,
			discarded = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + parcelColumns

	var parcelModel ParcelDB
	err := r.querier.QueryRow(
		ctx,
		query,
		parcelEntity.ID,
		parcelEntity.CustomerID,
		parcelEntity.Description,
		parcelEntity.Note,
		parcelEntity.ArrivedAt,
		parcelEntity.DeliveredAt,
		parcelEntity.BaseFee,
		parcelEntity.ComputedFee,
		parcelEntity.ChargedFee,
		parcelEntity.Status.String(),
		parcelEntity.Discarded,
	).Scan(scanTargets(&parcelModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, parcel.ErrConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, parcel.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository save error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE id = $1`

	var parcelModel ParcelDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&parcelModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}
		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) GetByIDsWithCustomer(ctx context.Context, ids []int64) ([]entities.ParcelWithCustomer, error) {
	query := `
		SELECT p.id, p.customer_id, p.description, p.note, p.arrived_at, p.delivered_at,
			p.base_fee, p.computed_fee, p.charged_fee, p.status, p.discarded,
			p.created_at, p.updated_at, c.name
		FROM parcels p
		JOIN customers c ON c.id = p.customer_id
		WHERE p.id = ANY($1)
		ORDER BY lower(c.name), p.arrived_at, p.id`

	rows, err := r.querier.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository getbyids error: %w", err)
	}
	defer rows.Close()

	parcels := make([]entities.ParcelWithCustomer, 0, len(ids))
	for rows.Next() {
		var parcelModel ParcelWithCustomerDB
		targets := append(scanTargets(&parcelModel.ParcelDB), &parcelModel.CustomerName)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository getbyids error: %w", err)
		}
		parcels = append(parcels, ToDomainWithCustomer(&parcelModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository getbyids error: %w", err)
	}

	return parcels, nil
}

func (r *Repository) GetAll(ctx context.Context, view entities.ParcelListView, page pagination.Page) ([]entities.Parcel, error) {
	builder := qb.
		Select("id", "customer_id", "description", "note", "arrived_at", "delivered_at",
			"base_fee", "computed_fee", "charged_fee", "status", "discarded",
			"created_at", "updated_at").
		From("parcels")

	switch view {
	case entities.ViewPending:
		builder = builder.Where(sq.Eq{"status": entities.ParcelPending.String(), "discarded": false})
	case entities.ViewDelivered:
		builder = builder.Where(sq.Eq{"status": entities.ParcelDelivered.String(), "discarded": false})
	case entities.ViewAll:
		builder = builder.Where(sq.Eq{"discarded": false})
	case entities.ViewTrash:
		builder = builder.Where(sq.Eq{"discarded": true})
	}

	query, args, err := builder.
		OrderBy("arrived_at DESC", "id DESC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository getall error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, page.Size)
	for rows.Next() {
		var parcelModel ParcelDB
		if err := rows.Scan(scanTargets(&parcelModel)...); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository getall error: %w", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository getall error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}

// All streams the whole table for the XML export, arrival order.
func (r *Repository) All(ctx context.Context) ([]entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		ORDER BY arrived_at, id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository all error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 64)
	for rows.Next() {
		var parcelModel ParcelDB
		if err := rows.Scan(scanTargets(&parcelModel)...); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository all error: %w", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository all error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}

func (r *Repository) CountByStatus(ctx context.Context) (*entities.StatusCounts, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'PENDENTE'),
			COUNT(*) FILTER (WHERE status = 'ENTREGUE'),
			COUNT(*)
		FROM parcels
		WHERE NOT discarded`

	var counts entities.StatusCounts
	err := r.querier.QueryRow(ctx, query).Scan(&counts.Pending, &counts.Delivered, &counts.Total)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository countbystatus error: %w", err)
	}

	return &counts, nil
}

func scanTargets(p *ParcelDB) []interface{} {
	return []interface{}{
		&p.ID,
		&p.CustomerID,
		&p.Description,
		&p.Note,
		&p.ArrivedAt,
		&p.DeliveredAt,
		&p.BaseFee,
		&p.ComputedFee,
		&p.ChargedFee,
		&p.Status,
		&p.Discarded,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}
