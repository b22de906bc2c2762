package parcel

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"encomendas/internal/entities"
	"encomendas/internal/pkg/pagination"
)

// DefaultBaseFee is charged per parcel unless intake overrides it.
var DefaultBaseFee = decimal.RequireFromString("10.00")

type Parcel struct {
	repository      Repository
	auditRepository AuditRepository
	feeFactory      StorageFeeFactory
	txManager       TxManager
}

func New(
	repository Repository,
	auditRepository AuditRepository,
	feeFactory StorageFeeFactory,
	txManager TxManager,
) *Parcel {
	return &Parcel{
		repository:      repository,
		auditRepository: auditRepository,
		feeFactory:      feeFactory,
		txManager:       txManager,
	}
}

func (s *Parcel) CreateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.CustomerID == nil ||
		parcelModify.Description == nil ||
		parcelModify.ArrivedAt == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidDescription(*parcelModify.Description) {
		return nil, ErrInvalidDescription
	}

	parcelEntity := entities.Parcel{
		CustomerID:  *parcelModify.CustomerID,
		Description: *parcelModify.Description,
		Note:        parcelModify.Note,
		ArrivedAt:   parcelModify.ArrivedAt.UTC(),
		DeliveredAt: parcelModify.DeliveredAt,
		BaseFee:     DefaultBaseFee,
		ChargedFee:  parcelModify.ChargedFee,
		Status:      entities.DefaultParcelStatus,
	}
	if parcelModify.BaseFee != nil {
		parcelEntity.BaseFee = *parcelModify.BaseFee
	}
	if parcelModify.Status != nil {
		parcelEntity.Status = *parcelModify.Status
	}
	if parcelModify.Discarded != nil {
		parcelEntity.Discarded = *parcelModify.Discarded
	}

	if err := s.applySaveRules(&parcelEntity, time.Now().UTC()); err != nil {
		return nil, err
	}

	created, err := s.repository.Create(ctx, parcelEntity)
	if err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}

	return created, nil
}

func (s *Parcel) UpdateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if parcelModify.Description != nil && !isValidDescription(*parcelModify.Description) {
		return nil, ErrInvalidDescription
	}

	var updated *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetByID(ctx, *parcelModify.ID)
		if err != nil {
			return fmt.Errorf("load parcel for update: %w", err)
		}

		merged := mergeModify(*existing, parcelModify)
		if err := s.applySaveRules(&merged, time.Now().UTC()); err != nil {
			return err
		}

		updated, err = s.repository.Save(ctx, merged)
		if err != nil {
			return fmt.Errorf("save parcel: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Parcel) GetParcel(ctx context.Context, id int64) (*entities.Parcel, error) {
	parcelEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	return parcelEntity, nil
}

func (s *Parcel) GetParcels(ctx context.Context, view entities.ParcelListView, page pagination.Page) ([]entities.Parcel, *entities.StatusCounts, error) {
	switch view {
	case entities.ViewPending, entities.ViewDelivered, entities.ViewAll, entities.ViewTrash:
	default:
		view = entities.ViewPending
	}

	parcels, err := s.repository.GetAll(ctx, view, page)
	if err != nil {
		return nil, nil, fmt.Errorf("get parcels: %w", err)
	}

	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("count parcels: %w", err)
	}

	return parcels, counts, nil
}

// applySaveRules enforces the save-time invariants on a fully merged
// parcel. Pending parcels carry no delivery data; delivered parcels get
// a delivery timestamp and a recomputed fee.
func (s *Parcel) applySaveRules(p *entities.Parcel, now time.Time) error {
	if !isValidStatus(p.Status) {
		return ErrInvalidStatus
	}
	if p.BaseFee.IsNegative() {
		return ErrInvalidBaseFee
	}

	switch p.Status {
	case entities.ParcelPending:
		p.DeliveredAt = nil
		p.ComputedFee = nil
		p.ChargedFee = nil
	case entities.ParcelDelivered:
		if p.DeliveredAt == nil {
			deliveredAt := now
			p.DeliveredAt = &deliveredAt
		}
		if p.DeliveredAt.Before(p.ArrivedAt) {
			return ErrDeliveredBeforeArrival
		}
		computed := s.feeFactory.Accrual(p.BaseFee, p.ArrivedAt, *p.DeliveredAt)
		p.ComputedFee = &computed
	}

	return nil
}

func mergeModify(existing entities.Parcel, modify entities.ParcelModify) entities.Parcel {
	if modify.CustomerID != nil {
		existing.CustomerID = *modify.CustomerID
	}
	if modify.Description != nil {
		existing.Description = *modify.Description
	}
	if modify.Note != nil {
		existing.Note = modify.Note
	}
	if modify.ArrivedAt != nil {
		existing.ArrivedAt = modify.ArrivedAt.UTC()
	}
	if modify.DeliveredAt != nil {
		existing.DeliveredAt = modify.DeliveredAt
	}
	if modify.BaseFee != nil {
		existing.BaseFee = *modify.BaseFee
	}
	if modify.ChargedFee != nil {
		existing.ChargedFee = modify.ChargedFee
	}
	if modify.Status != nil {
		existing.Status = *modify.Status
	}
	if modify.Discarded != nil {
		existing.Discarded = *modify.Discarded
	}
	return existing
}
