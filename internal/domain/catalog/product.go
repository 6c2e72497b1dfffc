package catalog

import (
	"strings"

	"github.com/elir12131/agroflow/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents a sellable product in the catalog. Names are
// unique across the catalog; the persistence layer enforces that.
type Product struct {
	shared.BaseEntity
	Name     string
	Category string
	Price    decimal.Decimal
}

// NewProduct creates a new product with the given name, category, and
// unit price. Category is optional.
func NewProduct(name, category string, price decimal.Decimal) (*Product, error) {
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Category:   strings.TrimSpace(category),
		Price:      price,
	}, nil
}

// Update changes the product name, category, and price
func (p *Product) Update(name, category string, price decimal.Decimal) error {
	if err := validateProductName(name); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}

	p.Name = strings.TrimSpace(name)
	p.Category = strings.TrimSpace(category)
	p.Price = price
	p.Touch()
	return nil
}

func validateProductName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name is required")
	}
	if len(trimmed) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
