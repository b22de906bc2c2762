package parcel

import "encomendas/internal/entities"

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}
	return &entities.Parcel{
		ID:          p.ID,
		CustomerID:  p.CustomerID,
		Description: p.Description,
		Note:        p.Note,
		ArrivedAt:   p.ArrivedAt,
		DeliveredAt: p.DeliveredAt,
		BaseFee:     p.BaseFee,
		ComputedFee: p.ComputedFee,
		ChargedFee:  p.ChargedFee,
		Status:      entities.ParcelStatusType(p.Status),
		Discarded:   p.Discarded,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToDomainList(models []ParcelDB) []entities.Parcel {
	parcels := make([]entities.Parcel, 0, len(models))
	for i := range models {
		parcels = append(parcels, *ToDomain(&models[i]))
	}
	return parcels
}

func ToDomainWithCustomer(p *ParcelWithCustomerDB) entities.ParcelWithCustomer {
	return entities.ParcelWithCustomer{
		Parcel:       *ToDomain(&p.ParcelDB),
		CustomerName: p.CustomerName,
	}
}
