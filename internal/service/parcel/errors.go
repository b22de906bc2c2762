package parcel

import "errors"

var (
	ErrMissingRequiredFields  = errors.New("missing required fields")
	ErrInvalidDescription     = errors.New("invalid description")
	ErrInvalidStatus          = errors.New("invalid status")
	ErrInvalidBaseFee         = errors.New("invalid base fee")
	ErrDeliveredBeforeArrival = errors.New("delivery timestamp precedes arrival")

	ErrEmptySelection = errors.New("no parcels selected")
	ErrMissingActor   = errors.New("missing actor")

	ErrParcelNotFound   = errors.New("parcel not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrConflict         = errors.New("parcel already exists")
)
