//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=settlement_preview_post_test
package settlement_preview_post

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
	SettlePreview(ctx context.Context, ids []int64) (*entities.SettlementPreview, error)
}
