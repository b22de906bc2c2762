package lookup

import (
	"context"
	"fmt"
	"time"

	"encomendas/internal/entities"
)

type Lookup struct {
	repository Repository
	feeFactory StorageFeeFactory
	matcher    MatcherFactory
}

func New(repository Repository, feeFactory StorageFeeFactory, matcher MatcherFactory) *Lookup {
	return &Lookup{
		repository: repository,
		feeFactory: feeFactory,
		matcher:    matcher,
	}
}

// Lookup answers the public self-service query: customers matching the
// query that still hold pending parcels, each parcel annotated with the
// accrual owed as of now. Delivered and discarded parcels never appear.
func (s *Lookup) Lookup(ctx context.Context, query string) (*entities.LookupResult, error) {
	raw, cleaned := s.matcher.Terms(query)
	if raw == "" {
		return nil, ErrEmptyQuery
	}

	customers, err := s.repository.FindCustomers(ctx, s.matcher.Mode(), raw, cleaned)
	if err != nil {
		return nil, fmt.Errorf("find customers: %w", err)
	}

	now := time.Now().UTC()
	result := entities.LookupResult{}

	for _, customer := range customers {
		parcels, err := s.repository.PendingParcels(ctx, customer.ID)
		if err != nil {
			return nil, fmt.Errorf("pending parcels for customer %d: %w", customer.ID, err)
		}
		if len(parcels) == 0 {
			continue
		}

		match := entities.LookupMatch{
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
		}
		for _, p := range parcels {
			days := s.feeFactory.DaysInStock(p.ArrivedAt, now)
			accrual := s.feeFactory.Accrual(p.BaseFee, p.ArrivedAt, now)

			match.Parcels = append(match.Parcels, entities.LookupParcel{
				ParcelID:    p.ID,
				Description: p.Description,
				ArrivedAt:   p.ArrivedAt,
				DaysInStock: days,
				Accrual:     accrual,
				Overdue:     s.feeFactory.Overdue(days),
			})
			match.Total = match.Total.Add(accrual)
		}

		result.Matches = append(result.Matches, match)
		result.GrandTotal = result.GrandTotal.Add(match.Total)
	}

	return &result, nil
}
