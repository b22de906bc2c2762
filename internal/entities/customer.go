package entities

import "time"

type Customer struct {
	ID        int64
	Name      string
	CPF       *string
	RG        *string
	Gender    *GenderType
	Phone     *string
	Email     *string
	CreatedAt time.Time
}

type GenderType string

const (
	GenderMale   GenderType = "M"
	GenderFemale GenderType = "F"
	GenderOther  GenderType = "O"
)

func (g GenderType) String() string {
	return string(g)
}

// HasDocument reports whether the customer carries at least one
// identifying document. Customers without any must have a unique name.
func (c *Customer) HasDocument() bool {
	return c.CPF != nil || c.RG != nil
}

type CustomerModify struct {
	ID     *int64
	Name   *string
	CPF    *string
	RG     *string
	Gender *GenderType
	Phone  *string
	Email  *string
}
