package customer

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"encomendas/internal/entities"
	"encomendas/internal/pkg/pagination"
	"encomendas/internal/repository"
	"encomendas/internal/service/customer"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, customerModifyEntity entities.CustomerModify) (int64, error) {
	customerModifyModel := FromDomainModify(&customerModifyEntity)

	query := `INSERT INTO customers (name, cpf, rg, gender, phone, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		customerModifyModel.Name,
		customerModifyModel.CPF,
		customerModifyModel.RG,
		customerModifyModel.Gender,
		customerModifyModel.Phone,
		customerModifyModel.Email,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, customer.ErrConflict
		}
		return 0, fmt.Errorf("unexpected customer repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error) {
	customerModifyModel := FromDomainModify(&customerModifyEntity)

	builder := qb.
		Update("customers")

	if customerModifyModel.Name != nil {
		builder = builder.Set("name", customerModifyModel.Name)
	}
	if customerModifyModel.CPF != nil {
		builder = builder.Set("cpf", customerModifyModel.CPF)
	}
	if customerModifyModel.RG != nil {
		builder = builder.Set("rg", customerModifyModel.RG)
	}
	if customerModifyModel.Gender != nil {
		builder = builder.Set("gender", customerModifyModel.Gender)
	}
	if customerModifyModel.Phone != nil {
		builder = builder.Set("phone", customerModifyModel.Phone)
	}
	if customerModifyModel.Email != nil {
		builder = builder.Set("email", customerModifyModel.Email)
	}

	builder = builder.
		Where(sq.Eq{"id": customerModifyModel.ID}).
		Suffix("RETURNING id, name, cpf, rg, gender, phone, email, created_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository update error: %w", err)
	}

	var customerModel CustomerDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, customer.ErrConflict
		}

		return nil, fmt.Errorf("unexpected customer repository update error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Customer, error) {
	query := `SELECT id, name, cpf, rg, gender, phone, email, created_at
		FROM customers
		WHERE id = $1`

	var customerModel CustomerDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("unexpected customer repository getbyid error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) GetAll(ctx context.Context, page pagination.Page) ([]entities.Customer, error) {
	query, args, err := qb.
		Select("id", "name", "cpf", "rg", "gender", "phone", "email", "created_at").
		From("customers").
		OrderBy("lower(name)", "id").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
	}
	defer rows.Close()

	customerModels := make([]CustomerDB, 0, page.Size)
	for rows.Next() {
		var customerModel CustomerDB
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
			return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
		}
		customerModels = append(customerModels, customerModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
	}

	return ToDomainList(customerModels), nil
}

// All streams the whole table for the XML export, name order.
func (r *Repository) All(ctx context.Context) ([]entities.Customer, error) {
	query := `SELECT id, name, cpf, rg, gender, phone, email, created_at
		FROM customers
		ORDER BY lower(name), id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository all error: %w", err)
	}
	defer rows.Close()

	customerModels := make([]CustomerDB, 0, 64)
	for rows.Next() {
		var customerModel CustomerDB
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
			return nil, fmt.Errorf("unexpected customer repository all error: %w", err)
		}
		customerModels = append(customerModels, customerModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository all error: %w", err)
	}

	return ToDomainList(customerModels), nil
}

func (r *Repository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM customers
		WHERE lower(name) = lower($1) AND id <> $2
	)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected customer repository existsbyname error: %w", err)
	}

	return exists, nil
}

func (r *Repository) CPFExists(ctx context.Context, document string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM customers
		WHERE cpf = $1 AND id <> $2
	)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, document, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected customer repository cpfexists error: %w", err)
	}

	return exists, nil
}
