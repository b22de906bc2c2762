package audit

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"encomendas/internal/entities"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository is the append-only audit trail. No update or delete paths
// exist on purpose.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, entry entities.AuditEntry) (int64, error) {
	query := `
		INSERT INTO audit_entries (actor, target_type, target_id, action, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		entry.Actor,
		entry.TargetType,
		entry.TargetID,
		entry.Action,
		entry.Message,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected audit repository append error: %w", err)
	}

	return id, nil
}
