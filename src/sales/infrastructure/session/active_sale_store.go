package session

import (
	"sync"

	"pos/src/sales/domain/entity"

	"github.com/google/uuid"
)

// ActiveSaleStore guarda en memoria las ventas abiertas de la sesión,
// indexadas por su ID, para que la capa HTTP pueda operarlas entre
// peticiones. Una venta sale del store al cerrarse o cancelarse.
type ActiveSaleStore struct {
	mu    sync.RWMutex
	sales map[uuid.UUID]*entity.Sale
}

// NewActiveSaleStore crea un store vacío.
func NewActiveSaleStore() *ActiveSaleStore {
	return &ActiveSaleStore{
		sales: make(map[uuid.UUID]*entity.Sale),
	}
}

// Put registra una venta abierta.
func (s *ActiveSaleStore) Put(sale *entity.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales[sale.ID] = sale
}

// Get busca una venta abierta por ID.
func (s *ActiveSaleStore) Get(id uuid.UUID) (*entity.Sale, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sale, ok := s.sales[id]
	return sale, ok
}

// Remove retira una venta del store.
func (s *ActiveSaleStore) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sales, id)
}

// Count regresa cuántas ventas siguen abiertas.
func (s *ActiveSaleStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sales)
}
