package entity

import (
	"sort"
	"strings"
	"time"

	inventory "pos/src/inventory/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItem asocia un producto de la venta con su cantidad
// (unidades o kilogramos según el tipo del producto).
type SaleItem struct {
	Product  inventory.Product
	Quantity decimal.Decimal
}

// Subtotal calcula el importe del item.
func (it SaleItem) Subtotal() decimal.Decimal {
	subtotal, _ := it.Product.CalculatePrice(it.Quantity)
	return subtotal
}

// Sale representa una venta en curso del mostrador (Aggregate Root).
//
// Mantiene los productos con sus cantidades, el total con descuento, la
// estrategia de descuento elegida y un estado interno que determina qué
// operaciones son legales. En PAID o CANCELLED toda mutación se rechaza
// con ErrSaleNotPending sin tocar items, total ni estado.
type Sale struct {
	ID        uuid.UUID
	CreatedAt time.Time

	items    map[string]SaleItem // por product ID
	total    decimal.Decimal     // 0 hasta aplicar descuento
	strategy DiscountStrategy
	status   SaleStatus
}

// NewSale crea una venta pendiente, sin descuento y sin productos.
func NewSale() *Sale {
	return &Sale{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		items:     make(map[string]SaleItem),
		total:     decimal.Zero,
		strategy:  NoDiscount(),
		status:    SaleStatusPending,
	}
}

// Status regresa el estado actual de la venta.
func (s *Sale) Status() SaleStatus {
	return s.status
}

// Total regresa el total con descuento; 0 si aún no se aplica.
func (s *Sale) Total() decimal.Decimal {
	return s.total
}

// Items regresa una copia de los items ordenada por nombre de producto.
func (s *Sale) Items() []SaleItem {
	items := make([]SaleItem, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, it)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return strings.ToLower(items[i].Product.Name) < strings.ToLower(items[j].Product.Name)
	})
	return items
}

// ItemCount regresa el número de productos distintos en la venta.
func (s *Sale) ItemCount() int {
	return len(s.items)
}

// Quantity regresa la cantidad acumulada de un producto, 0 si no está.
func (s *Sale) Quantity(productID string) decimal.Decimal {
	if it, ok := s.items[productID]; ok {
		return it.Quantity
	}
	return decimal.Zero
}

// AddProduct agrega un producto a la venta, acumulando la cantidad si
// el producto ya estaba. Sólo es legal con la venta pendiente.
func (s *Sale) AddProduct(product inventory.Product, quantity decimal.Decimal) error {
	if s.status != SaleStatusPending {
		return ErrSaleNotPending
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidQuantity
	}

	it := s.items[product.ID]
	it.Product = product
	it.Quantity = it.Quantity.Add(quantity)
	s.items[product.ID] = it
	return nil
}

// SetStrategy cambia la estrategia de descuento de la venta.
func (s *Sale) SetStrategy(strategy DiscountStrategy) error {
	if s.status != SaleStatusPending {
		return ErrSaleNotPending
	}
	if strategy == nil {
		strategy = NoDiscount()
	}
	s.strategy = strategy
	return nil
}

// ApplyDiscount recalcula el total aplicando la estrategia sobre el
// subtotal bruto. Sólo es legal con la venta pendiente.
func (s *Sale) ApplyDiscount() error {
	if s.status != SaleStatusPending {
		return ErrSaleNotPending
	}
	s.total = s.strategy(s.CalculateTotalWithoutDiscount())
	return nil
}

// Finalize cierra la venta: PENDING -> PAID.
func (s *Sale) Finalize() error {
	next, err := nextStatus(s.status, eventFinalize)
	if err != nil {
		return err
	}
	s.status = next
	return nil
}

// Cancel cancela la venta: PENDING -> CANCELLED.
func (s *Sale) Cancel() error {
	next, err := nextStatus(s.status, eventCancel)
	if err != nil {
		return err
	}
	s.status = next
	return nil
}

// CalculateTotalWithoutDiscount suma los subtotales de todos los items.
// Es una consulta pura, disponible en cualquier estado.
func (s *Sale) CalculateTotalWithoutDiscount() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range s.items {
		sum = sum.Add(it.Subtotal())
	}
	return sum
}
