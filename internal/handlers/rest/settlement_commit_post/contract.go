//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_commit_post_test
package settlement_commit_post

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
	SettleCommit(ctx context.Context, actor string, rows []entities.SettlementRow) (*entities.SettlementResult, error)
}
