package customer

import (
	"context"
	"fmt"
	"strings"

	"encomendas/internal/entities"
	"encomendas/internal/pkg/pagination"
)

type Customer struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Customer {
	return &Customer{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Customer) CreateCustomer(ctx context.Context, customerModify entities.CustomerModify) (int64, error) {
	if customerModify.Name == nil {
		return 0, ErrMissingRequiredFields
	}
	if !isValidName(*customerModify.Name) {
		return 0, ErrInvalidName
	}

	normalizeDocuments(&customerModify)

	if err := validateDocuments(customerModify.CPF, customerModify.RG); err != nil {
		return 0, err
	}
	if customerModify.Gender != nil && !isValidGender(customerModify.Gender.String()) {
		return 0, ErrInvalidGender
	}

	var id int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.checkCrossFieldUniqueness(ctx, customerModify.Name, customerModify.CPF, customerModify.RG, 0); err != nil {
			return err
		}

		createdID, err := s.repository.Create(ctx, customerModify)
		if err != nil {
			return fmt.Errorf("create customer: %w", err)
		}
		id = createdID
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *Customer) UpdateCustomer(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	if customerModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if customerModify.Name == nil &&
		customerModify.CPF == nil &&
		customerModify.RG == nil &&
		customerModify.Gender == nil &&
		customerModify.Phone == nil &&
		customerModify.Email == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if customerModify.Name != nil && !isValidName(*customerModify.Name) {
		return nil, ErrInvalidName
	}

	normalizeDocuments(&customerModify)

	if err := validateDocuments(customerModify.CPF, customerModify.RG); err != nil {
		return nil, err
	}
	if customerModify.Gender != nil && !isValidGender(customerModify.Gender.String()) {
		return nil, ErrInvalidGender
	}

	var updated *entities.Customer
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.repository.GetByID(ctx, *customerModify.ID)
		if err != nil {
			return fmt.Errorf("load customer for update: %w", err)
		}

		// Evaluate the anonymous-duplicate rule against the state the
		// record will have after the update.
		finalName := existing.Name
		if customerModify.Name != nil {
			finalName = *customerModify.Name
		}
		finalCPF := existing.CPF
		if customerModify.CPF != nil {
			finalCPF = emptyAsNil(customerModify.CPF)
		}
		finalRG := existing.RG
		if customerModify.RG != nil {
			finalRG = emptyAsNil(customerModify.RG)
		}

		if err := s.checkCrossFieldUniqueness(ctx, &finalName, finalCPF, finalRG, existing.ID); err != nil {
			return err
		}

		updated, err = s.repository.Update(ctx, customerModify)
		if err != nil {
			return fmt.Errorf("update customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Customer) GetCustomer(ctx context.Context, id int64) (*entities.Customer, error) {
	customer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return customer, nil
}

func (s *Customer) GetCustomers(ctx context.Context, page pagination.Page) ([]entities.Customer, error) {
	customers, err := s.repository.GetAll(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("get customers: %w", err)
	}

	return customers, nil
}

// checkCrossFieldUniqueness enforces the two invariants a plain unique
// constraint cannot express: a customer without any document needs a
// globally unique name, and an rg must not collide with an existing cpf.
func (s *Customer) checkCrossFieldUniqueness(ctx context.Context, name, cpf, rg *string, excludeID int64) error {
	if cpf == nil && rg == nil && name != nil {
		exists, err := s.repository.ExistsByName(ctx, *name, excludeID)
		if err != nil {
			return fmt.Errorf("check duplicate name: %w", err)
		}
		if exists {
			return ErrDuplicateName
		}
	}

	if rg != nil {
		exists, err := s.repository.CPFExists(ctx, *rg, excludeID)
		if err != nil {
			return fmt.Errorf("check rg against cpfs: %w", err)
		}
		if exists {
			return ErrRGMatchesCPF
		}
	}

	return nil
}

func validateDocuments(cpf, rg *string) error {
	if cpf != nil {
		if !isDigits(*cpf) || !isValidCPF(*cpf) {
			return ErrInvalidCPF
		}
	}
	if rg != nil {
		if !isValidRG(*rg) {
			return ErrInvalidRG
		}
	}
	return nil
}

// normalizeDocuments maps blank documents to nil so empty form fields do
// not trip the unique constraints.
func normalizeDocuments(m *entities.CustomerModify) {
	m.CPF = emptyAsNil(m.CPF)
	m.RG = emptyAsNil(m.RG)
}

func emptyAsNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
