package customer

import "encomendas/internal/entities"

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}
	customerEntity := &entities.Customer{
		ID:        c.ID,
		Name:      c.Name,
		CPF:       c.CPF,
		RG:        c.RG,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
	if c.Gender != nil {
		gender := entities.GenderType(*c.Gender)
		customerEntity.Gender = &gender
	}
	return customerEntity
}

func ToDomainList(models []CustomerDB) []entities.Customer {
	customers := make([]entities.Customer, 0, len(models))
	for i := range models {
		customers = append(customers, *ToDomain(&models[i]))
	}
	return customers
}

func FromDomainModify(c *entities.CustomerModify) *CustomerModifyDB {
	if c == nil {
		return nil
	}
	customerModifyDB := &CustomerModifyDB{
		ID:    c.ID,
		Name:  c.Name,
		CPF:   c.CPF,
		RG:    c.RG,
		Phone: c.Phone,
		Email: c.Email,
	}
	if c.Gender != nil {
		gender := c.Gender.String()
		customerModifyDB.Gender = &gender
	}
	return customerModifyDB
}
