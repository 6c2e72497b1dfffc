package partner

import (
	"strings"

	"github.com/elir12131/agroflow/internal/domain/shared"
)

// Customer represents a buyer the business takes orders for
type Customer struct {
	shared.BaseEntity
	Name    string
	Phone   string
	Email   string
	Address string
	Notes   string
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name, phone, email, address, notes string) (*Customer, error) {
	if err := validateCustomerName(name); err != nil {
		return nil, err
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Phone:      strings.TrimSpace(phone),
		Email:      strings.TrimSpace(email),
		Address:    strings.TrimSpace(address),
		Notes:      strings.TrimSpace(notes),
	}, nil
}

// Update changes the customer's contact details and notes
func (c *Customer) Update(name, phone, email, address, notes string) error {
	if err := validateCustomerName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Phone = strings.TrimSpace(phone)
	c.Email = strings.TrimSpace(email)
	c.Address = strings.TrimSpace(address)
	c.Notes = strings.TrimSpace(notes)
	c.Touch()
	return nil
}

func validateCustomerName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name is required")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot exceed 200 characters")
	}
	return nil
}
