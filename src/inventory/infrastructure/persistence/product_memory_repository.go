package persistence

import (
	"context"
	"fmt"
	"sync"

	"pos/src/inventory/domain/entity"
	"pos/src/inventory/domain/port"

	"github.com/shopspring/decimal"
)

// ProductMemoryRepository implementa ProductRepository en memoria.
// Se usa como respaldo cuando no hay base de datos disponible y en tests.
type ProductMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]port.ProductRecord // por product ID
}

// NewProductMemoryRepository crea un repositorio en memoria vacío.
func NewProductMemoryRepository() *ProductMemoryRepository {
	return &ProductMemoryRepository{
		records: make(map[string]port.ProductRecord),
	}
}

// LoadAll regresa una copia de todas las filas guardadas.
func (r *ProductMemoryRepository) LoadAll(ctx context.Context) ([]port.ProductRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]port.ProductRecord, 0, len(r.records))
	for _, rec := range r.records {
		records = append(records, rec)
	}
	return records, nil
}

// Insert guarda un producto nuevo.
func (r *ProductMemoryRepository) Insert(ctx context.Context, product entity.Product, stock decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[product.ID]; exists {
		return fmt.Errorf("error inserting product %s: duplicate id", product.ID)
	}
	r.records[product.ID] = r.toRecord(product, stock)
	return nil
}

// Update reescribe la fila de un producto existente.
func (r *ProductMemoryRepository) Update(ctx context.Context, product entity.Product, stock decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.records[product.ID]; !exists {
		return fmt.Errorf("error updating product %s: not found", product.ID)
	}
	r.records[product.ID] = r.toRecord(product, stock)
	return nil
}

// Delete elimina la fila de un producto.
func (r *ProductMemoryRepository) Delete(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.records, productID)
	return nil
}

func (r *ProductMemoryRepository) toRecord(product entity.Product, stock decimal.Decimal) port.ProductRecord {
	return port.ProductRecord{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.UnitPrice,
		Stock: stock,
		Kind:  product.Kind,
	}
}
