package entity

import (
	"sync"

	"github.com/shopspring/decimal"
)

// SalesHistory es el libro de ventas cerradas de la sesión: sólo crece,
// nunca se muta salvo por append.
type SalesHistory struct {
	mu    sync.RWMutex
	sales []*Sale
}

// NewSalesHistory crea un historial vacío.
func NewSalesHistory() *SalesHistory {
	return &SalesHistory{}
}

// Add registra una venta en el historial.
func (h *SalesHistory) Add(sale *Sale) error {
	if sale == nil {
		return ErrNilSale
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sales = append(h.sales, sale)
	return nil
}

// List regresa una instantánea del historial. Mutar el slice devuelto
// no afecta al libro interno.
func (h *SalesHistory) List() []*Sale {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]*Sale, len(h.sales))
	copy(out, h.sales)
	return out
}

// Len regresa el número de ventas registradas.
func (h *SalesHistory) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sales)
}

// TotalRevenue suma los totales de todas las ventas del historial.
func (h *SalesHistory) TotalRevenue() decimal.Decimal {
	h.mu.RLock()
	defer h.mu.RUnlock()
	sum := decimal.Zero
	for _, s := range h.sales {
		sum = sum.Add(s.Total())
	}
	return sum
}
