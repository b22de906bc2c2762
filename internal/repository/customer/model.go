package customer

import "time"

type CustomerDB struct {
	ID        int64
	Name      string
	CPF       *string
	RG        *string
	Gender    *string
	Phone     *string
	Email     *string
	CreatedAt time.Time
}

type CustomerModifyDB struct {
	ID     *int64
	Name   *string
	CPF    *string
	RG     *string
	Gender *string
	Phone  *string
	Email  *string
}
