package entity

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ProductKind indica cómo se vende un producto: por pieza o por peso.
type ProductKind string

const (
	KindByUnit   ProductKind = "BY_UNIT"
	KindByWeight ProductKind = "BY_WEIGHT"
)

// Product representa un producto del catálogo (Value Object inmutable).
// La identidad es el ID: renombrar o cambiar el precio produce un nuevo
// valor con el mismo ID, nunca una mutación en el lugar.
type Product struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Kind      ProductKind `json:"kind"`
	UnitPrice decimal.Decimal `json:"unit_price"` // precio por unidad o por kg según Kind
}

// NewProduct crea un producto validando nombre, precio y tipo.
func NewProduct(id string, kind ProductKind, name string, unitPrice decimal.Decimal) (Product, error) {
	if name == "" {
		return Product{}, ErrProductNameRequired
	}
	if unitPrice.IsNegative() {
		return Product{}, ErrInvalidPrice
	}
	switch kind {
	case KindByUnit, KindByWeight:
	default:
		return Product{}, fmt.Errorf("%w: %s", ErrUnknownProductKind, kind)
	}

	return Product{
		ID:        id,
		Name:      name,
		Kind:      kind,
		UnitPrice: unitPrice,
	}, nil
}

// WithName regresa un nuevo producto con otro nombre y la misma identidad.
func (p Product) WithName(name string) (Product, error) {
	return NewProduct(p.ID, p.Kind, name, p.UnitPrice)
}

// WithPrice regresa un nuevo producto con otro precio y la misma identidad.
func (p Product) WithPrice(unitPrice decimal.Decimal) (Product, error) {
	return NewProduct(p.ID, p.Kind, p.Name, unitPrice)
}

// CalculatePrice calcula el precio para una cantidad dada
// (unidades o kilogramos según el tipo del producto).
func (p Product) CalculatePrice(quantity decimal.Decimal) (decimal.Decimal, error) {
	if quantity.IsNegative() {
		return decimal.Zero, ErrNegativeQuantity
	}
	return p.UnitPrice.Mul(quantity), nil
}

// PriceLabel regresa la etiqueta legible de la unidad de precio.
func (p Product) PriceLabel() string {
	if p.Kind == KindByWeight {
		return "per kg"
	}
	return "per unit"
}

func (p Product) String() string {
	return fmt.Sprintf("%s{id=%s, name=%s, price=%s %s}", p.Kind, p.ID, p.Name, p.UnitPrice.StringFixed(2), p.PriceLabel())
}
