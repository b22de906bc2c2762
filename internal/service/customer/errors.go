package customer

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidCPF            = errors.New("invalid cpf")
	ErrInvalidRG             = errors.New("invalid rg")
	ErrInvalidGender         = errors.New("invalid gender")
	ErrDuplicateName         = errors.New("customer with this name already exists, provide cpf or rg to register a homonym")
	ErrRGMatchesCPF          = errors.New("rg collides with an existing cpf")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrConflict         = errors.New("customer already exists")
)
