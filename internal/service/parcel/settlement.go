package parcel

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"encomendas/internal/entities"
)

// SettlePreview is the read-only first phase of the bulk settlement
// workflow: the selection grouped by customer with accrual suggested as
// of now. Nothing is persisted.
func (s *Parcel) SettlePreview(ctx context.Context, ids []int64) (*entities.SettlementPreview, error) {
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}

	rows, err := s.repository.GetByIDsWithCustomer(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load selection: %w", err)
	}

	now := time.Now().UTC()
	preview := entities.SettlementPreview{GeneratedAt: now}

	groupIndex := map[int64]int{}
	for _, row := range rows {
		if row.Status == entities.ParcelDelivered {
			preview.HasDuplicate = true
		}

		days := s.feeFactory.DaysInStock(row.ArrivedAt, now)
		suggested := s.feeFactory.Accrual(row.BaseFee, row.ArrivedAt, now)

		item := entities.SettlementItem{
			ParcelID:     row.ID,
			Description:  row.Description,
			ArrivedAt:    row.ArrivedAt,
			Status:       row.Status,
			DaysInStock:  days,
			Multiplier:   s.feeFactory.Multiplier(days),
			BaseFee:      row.BaseFee,
			SuggestedFee: suggested,
			Overdue:      s.feeFactory.Overdue(days),
		}

		idx, ok := groupIndex[row.CustomerID]
		if !ok {
			preview.Groups = append(preview.Groups, entities.SettlementGroup{
				CustomerID:   row.CustomerID,
				CustomerName: row.CustomerName,
			})
			idx = len(preview.Groups) - 1
			groupIndex[row.CustomerID] = idx
		}
		preview.Groups[idx].Items = append(preview.Groups[idx].Items, item)
		preview.Groups[idx].SuggestedTotal = preview.Groups[idx].SuggestedTotal.Add(suggested)
	}

	return &preview, nil
}

// SettleCommit marks each submitted parcel as delivered with the charged
// amount the staff typed in. Rows are re-resolved by id: the preview
// listing is paginated and cannot be trusted across the round-trip. Each
// row commits in its own transaction, so a bad row leaves its parcel
// untouched and the batch continues.
func (s *Parcel) SettleCommit(ctx context.Context, actor string, rows []entities.SettlementRow) (*entities.SettlementResult, error) {
	if strings.TrimSpace(actor) == "" {
		return nil, ErrMissingActor
	}
	if len(rows) == 0 {
		return nil, ErrEmptySelection
	}

	result := entities.SettlementResult{}

	for _, row := range rows {
		amount, err := parseChargedAmount(row.Amount)
		if err != nil {
			result.Errors++
			continue
		}

		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			return s.settleOne(ctx, actor, row.ParcelID, amount)
		})
		switch {
		case err == nil:
			result.Settled++
		case errors.Is(err, ErrConflict):
			result.Conflicts++
		case errors.Is(err, ErrParcelNotFound):
			result.Errors++
		default:
			return &result, fmt.Errorf("settle parcel %d: %w", row.ParcelID, err)
		}
	}

	return &result, nil
}

func (s *Parcel) settleOne(ctx context.Context, actor string, parcelID int64, amount decimal.Decimal) error {
	parcelEntity, err := s.repository.GetByID(ctx, parcelID)
	if err != nil {
		return fmt.Errorf("load parcel: %w", err)
	}

	parcelEntity.ChargedFee = &amount
	parcelEntity.Status = entities.ParcelDelivered
	if parcelEntity.DeliveredAt == nil {
		deliveredAt := time.Now().UTC()
		parcelEntity.DeliveredAt = &deliveredAt
	}
	computed := s.feeFactory.Accrual(parcelEntity.BaseFee, parcelEntity.ArrivedAt, *parcelEntity.DeliveredAt)
	parcelEntity.ComputedFee = &computed

	if _, err := s.repository.Save(ctx, *parcelEntity); err != nil {
		return fmt.Errorf("save parcel: %w", err)
	}

	entry := entities.AuditEntry{
		Actor:      actor,
		TargetType: entities.AuditTargetParcel,
		TargetID:   parcelEntity.ID,
		Action:     entities.AuditActionSettle,
		Message:    fmt.Sprintf("parcel %q settled for %s", parcelEntity.Description, amount.StringFixed(2)),
	}
	if _, err := s.auditRepository.Append(ctx, entry); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}

	return nil
}

// parseChargedAmount sanitizes the raw form input. An empty field means
// nothing was collected (0.00). A non-empty field keeps only digits,
// comma and period, is comma-normalized and must then parse as a
// decimal.
func parseChargedAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, nil
	}

	s = strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			return r
		}
		return -1
	}, s)
	s = strings.ReplaceAll(s, ",", ".")

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse charged amount %q: %w", raw, err)
	}
	return amount, nil
}
