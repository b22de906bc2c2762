package export

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"encomendas/internal/entities"
)

// Export renders full-table XML snapshots for offline archiving. The
// documents are small enough for the pharmacy's data volume to build in
// memory.
type Export struct {
	customers CustomerRepository
	parcels   ParcelRepository
}

func New(customers CustomerRepository, parcels ParcelRepository) *Export {
	return &Export{
		customers: customers,
		parcels:   parcels,
	}
}

type customersDoc struct {
	XMLName xml.Name      `xml:"customers"`
	Items   []customerXML `xml:"customer"`
}

type customerXML struct {
	ID        int64  `xml:"id,attr"`
	Name      string `xml:"name"`
	CPF       string `xml:"cpf,omitempty"`
	RG        string `xml:"rg,omitempty"`
	Gender    string `xml:"gender,omitempty"`
	Phone     string `xml:"phone,omitempty"`
	Email     string `xml:"email,omitempty"`
	CreatedAt string `xml:"created_at"`
}

type parcelsDoc struct {
	XMLName xml.Name    `xml:"parcels"`
	Items   []parcelXML `xml:"parcel"`
}

type parcelXML struct {
	ID          int64  `xml:"id,attr"`
	CustomerID  int64  `xml:"customer_id"`
	Description string `xml:"description"`
	Note        string `xml:"note,omitempty"`
	ArrivedAt   string `xml:"arrived_at"`
	DeliveredAt string `xml:"delivered_at,omitempty"`
	BaseFee     string `xml:"base_fee"`
	ComputedFee string `xml:"computed_fee,omitempty"`
	ChargedFee  string `xml:"charged_fee,omitempty"`
	Status      string `xml:"status"`
	Discarded   bool   `xml:"discarded"`
}

func (s *Export) CustomersXML(ctx context.Context) ([]byte, error) {
	customers, err := s.customers.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load customers: %w", err)
	}

	doc := customersDoc{Items: make([]customerXML, 0, len(customers))}
	for _, c := range customers {
		item := customerXML{
			ID:        c.ID,
			Name:      c.Name,
			CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
		}
		if c.CPF != nil {
			item.CPF = *c.CPF
		}
		if c.RG != nil {
			item.RG = *c.RG
		}
		if c.Gender != nil {
			item.Gender = c.Gender.String()
		}
		if c.Phone != nil {
			item.Phone = *c.Phone
		}
		if c.Email != nil {
			item.Email = *c.Email
		}
		doc.Items = append(doc.Items, item)
	}

	return marshal(doc)
}

func (s *Export) ParcelsXML(ctx context.Context) ([]byte, error) {
	parcels, err := s.parcels.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load parcels: %w", err)
	}

	doc := parcelsDoc{Items: make([]parcelXML, 0, len(parcels))}
	for _, p := range parcels {
		doc.Items = append(doc.Items, toParcelXML(p))
	}

	return marshal(doc)
}

func toParcelXML(p entities.Parcel) parcelXML {
	item := parcelXML{
		ID:          p.ID,
		CustomerID:  p.CustomerID,
		Description: p.Description,
		ArrivedAt:   p.ArrivedAt.UTC().Format(time.RFC3339),
		BaseFee:     p.BaseFee.StringFixed(2),
		Status:      p.Status.String(),
		Discarded:   p.Discarded,
	}
	if p.Note != nil {
		item.Note = *p.Note
	}
	if p.DeliveredAt != nil {
		item.DeliveredAt = p.DeliveredAt.UTC().Format(time.RFC3339)
	}
	if p.ComputedFee != nil {
		item.ComputedFee = p.ComputedFee.StringFixed(2)
	}
	if p.ChargedFee != nil {
		item.ChargedFee = p.ChargedFee.StringFixed(2)
	}
	return item
}

func marshal(doc interface{}) ([]byte, error) {
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export document: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
