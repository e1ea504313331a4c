package service

import (
	"context"
	"sync"

	"pos/src/inventory/domain/port"
)

// El inventario modela el almacén único del mostrador: estado a nivel
// proceso con ciclo de vida igual al de la aplicación. La raíz de
// composición (main) lo construye exactamente una vez vía Initialize;
// llamadas posteriores regresan la misma instancia sin reconstruirla.
var (
	instance *Inventory
	initOnce sync.Once
	initErr  error
)

// Initialize construye la instancia única del inventario. Es seguro
// llamarla desde varias goroutines: sólo la primera llamada construye.
func Initialize(ctx context.Context, repo port.ProductRepository) (*Inventory, error) {
	initOnce.Do(func() {
		instance, initErr = NewInventory(ctx, repo)
	})
	return instance, initErr
}

// Instance regresa la instancia única ya inicializada, o nil si
// Initialize no se ha llamado todavía.
func Instance() *Inventory {
	return instance
}
