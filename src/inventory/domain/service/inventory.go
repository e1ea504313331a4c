package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"pos/src/inventory/domain/entity"
	"pos/src/inventory/domain/port"

	"github.com/shopspring/decimal"
)

// stockEntry asocia un producto del catálogo con su existencia actual.
type stockEntry struct {
	product entity.Product
	stock   decimal.Decimal
}

// StockedProduct es la vista de lectura de un producto con su stock.
type StockedProduct struct {
	Product entity.Product
	Stock   decimal.Decimal
}

// Inventory gestiona el catálogo de productos y sus existencias.
//
// Los productos viven en una tabla indexada por ID, con el nombre como
// índice secundario único (case-insensitive). Cada mutación se persiste
// a través del ProductRepository antes de confirmarse en memoria y
// después notifica a todos los listeners registrados.
type Inventory struct {
	mu        sync.RWMutex
	entries   map[string]*stockEntry // por product ID
	nameIndex map[string]string      // lower(name) -> product ID
	listeners []port.ChangeListener
	repo      port.ProductRepository
}

// NewInventory crea el inventario y carga el catálogo desde el repositorio.
func NewInventory(ctx context.Context, repo port.ProductRepository) (*Inventory, error) {
	inv := &Inventory{
		entries:   make(map[string]*stockEntry),
		nameIndex: make(map[string]string),
		repo:      repo,
	}
	if err := inv.load(ctx); err != nil {
		return nil, err
	}
	return inv, nil
}

// load reconstruye el estado en memoria a partir de las filas persistidas.
func (inv *Inventory) load(ctx context.Context) error {
	records, err := inv.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("error loading inventory: %w", err)
	}

	for _, rec := range records {
		product, err := entity.NewProduct(rec.ID, rec.Kind, rec.Name, rec.Price)
		if err != nil {
			return fmt.Errorf("error loading product %s: %w", rec.ID, err)
		}
		inv.entries[product.ID] = &stockEntry{product: product, stock: rec.Stock}
		inv.nameIndex[strings.ToLower(product.Name)] = product.ID
	}

	log.Printf("Inventario cargado: %d productos", len(inv.entries))
	return nil
}

// Register registra un listener que recibirá cada cambio del inventario.
func (inv *Inventory) Register(l port.ChangeListener) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.listeners = append(inv.listeners, l)
}

// AddProduct da de alta un producto nuevo con stock cero.
// Falla con ErrDuplicateName si ya existe un producto con el mismo
// nombre (comparación case-insensitive).
func (inv *Inventory) AddProduct(ctx context.Context, id string, kind entity.ProductKind, name string, unitPrice decimal.Decimal) (entity.Product, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if _, exists := inv.nameIndex[strings.ToLower(name)]; exists {
		return entity.Product{}, fmt.Errorf("%w: %s", entity.ErrDuplicateName, name)
	}

	product, err := entity.NewProduct(id, kind, name, unitPrice)
	if err != nil {
		return entity.Product{}, err
	}

	if err := inv.repo.Insert(ctx, product, decimal.Zero); err != nil {
		return entity.Product{}, fmt.Errorf("error persisting product %s: %w", name, err)
	}

	inv.entries[product.ID] = &stockEntry{product: product, stock: decimal.Zero}
	inv.nameIndex[strings.ToLower(product.Name)] = product.ID

	inv.notifyListeners(fmt.Sprintf("Product added: %s | Price %s: %s",
		product.Name, product.PriceLabel(), product.UnitPrice.StringFixed(2)))
	return product, nil
}

// AddStock aumenta las existencias de un producto.
// La cantidad debe ser estrictamente positiva.
func (inv *Inventory) AddStock(ctx context.Context, product entity.Product, quantity decimal.Decimal) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	return inv.addStockLocked(ctx, product.ID, quantity)
}

// AddStockByName aumenta las existencias buscando el producto por nombre.
func (inv *Inventory) AddStockByName(ctx context.Context, name string, quantity decimal.Decimal) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	id, ok := inv.nameIndex[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrProductNotFound, name)
	}
	return inv.addStockLocked(ctx, id, quantity)
}

func (inv *Inventory) addStockLocked(ctx context.Context, productID string, quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return entity.ErrInvalidQuantity
	}

	e, ok := inv.entries[productID]
	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrProductNotFound, productID)
	}

	newStock := e.stock.Add(quantity)
	if err := inv.repo.Update(ctx, e.product, newStock); err != nil {
		return fmt.Errorf("error persisting stock of %s: %w", e.product.Name, err)
	}
	e.stock = newStock

	unit := ""
	if e.product.Kind == entity.KindByWeight {
		unit = " (kg)"
	}
	inv.notifyListeners(fmt.Sprintf("Added to inventory: %s | Quantity%s: %s | Current total%s: %s",
		e.product.Name, unit, quantity.String(), unit, e.stock.String()))
	return nil
}

// ReduceStock descuenta existencias de un producto.
// Falla con ErrInvalidQuantity si la cantidad no es positiva y con
// ErrInsufficientStock si el stock actual no alcanza.
func (inv *Inventory) ReduceStock(ctx context.Context, product entity.Product, quantity decimal.Decimal) error {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	if quantity.LessThanOrEqual(decimal.Zero) {
		return entity.ErrInvalidQuantity
	}

	e, ok := inv.entries[product.ID]
	if !ok || e.stock.LessThan(quantity) {
		return fmt.Errorf("%w: %s", entity.ErrInsufficientStock, product.Name)
	}

	newStock := e.stock.Sub(quantity)
	if err := inv.repo.Update(ctx, e.product, newStock); err != nil {
		return fmt.Errorf("error persisting stock of %s: %w", e.product.Name, err)
	}
	e.stock = newStock

	inv.notifyListeners(fmt.Sprintf("Stock reduced: %s | Amount withdrawn: %s | Remaining: %s",
		e.product.Name, quantity.String(), e.stock.String()))
	return nil
}

// GetStock regresa las existencias de un producto, 0 si no está en el
// inventario. La resolución es por ID: una referencia obsoleta (por
// ejemplo tras un renombre) sigue resolviendo al mismo producto.
func (inv *Inventory) GetStock(product entity.Product) decimal.Decimal {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	if e, ok := inv.entries[product.ID]; ok {
		return e.stock
	}
	return decimal.Zero
}

// GetStockByName regresa las existencias buscando por nombre, 0 si no existe.
func (inv *Inventory) GetStockByName(name string) decimal.Decimal {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	if id, ok := inv.nameIndex[strings.ToLower(name)]; ok {
		return inv.entries[id].stock
	}
	return decimal.Zero
}

// FindByName busca un producto por nombre (case-insensitive).
func (inv *Inventory) FindByName(name string) (entity.Product, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	id, ok := inv.nameIndex[strings.ToLower(name)]
	if !ok {
		return entity.Product{}, false
	}
	return inv.entries[id].product, true
}

// RenameProduct cambia el nombre de un producto conservando ID, precio
// y stock. Falla con ErrProductNotFound si el nombre actual no existe y
// con ErrDuplicateName si el nuevo nombre ya lo usa otro producto.
func (inv *Inventory) RenameProduct(ctx context.Context, currentName, newName string) (entity.Product, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	id, ok := inv.nameIndex[strings.ToLower(currentName)]
	if !ok {
		return entity.Product{}, fmt.Errorf("%w: %s", entity.ErrProductNotFound, currentName)
	}
	if conflictID, used := inv.nameIndex[strings.ToLower(newName)]; used && conflictID != id {
		return entity.Product{}, fmt.Errorf("%w: %s", entity.ErrDuplicateName, newName)
	}

	e := inv.entries[id]
	renamed, err := e.product.WithName(newName)
	if err != nil {
		return entity.Product{}, err
	}

	if err := inv.repo.Update(ctx, renamed, e.stock); err != nil {
		return entity.Product{}, fmt.Errorf("error persisting rename of %s: %w", currentName, err)
	}

	delete(inv.nameIndex, strings.ToLower(e.product.Name))
	e.product = renamed
	inv.nameIndex[strings.ToLower(renamed.Name)] = id

	inv.notifyListeners(fmt.Sprintf("Product renamed: %s -> %s", currentName, newName))
	return renamed, nil
}

// UpdatePrice cambia el precio de un producto conservando ID, nombre y stock.
func (inv *Inventory) UpdatePrice(ctx context.Context, name string, newPrice decimal.Decimal) (entity.Product, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	id, ok := inv.nameIndex[strings.ToLower(name)]
	if !ok {
		return entity.Product{}, fmt.Errorf("%w: %s", entity.ErrProductNotFound, name)
	}

	e := inv.entries[id]
	repriced, err := e.product.WithPrice(newPrice)
	if err != nil {
		return entity.Product{}, err
	}

	if err := inv.repo.Update(ctx, repriced, e.stock); err != nil {
		return entity.Product{}, fmt.Errorf("error persisting price of %s: %w", name, err)
	}
	e.product = repriced

	inv.notifyListeners(fmt.Sprintf("Product price updated: %s | New price: %s",
		repriced.Name, newPrice.StringFixed(2)))
	return repriced, nil
}

// RemoveProduct elimina un producto por nombre. Regresa false (sin
// error) si el producto no existe.
func (inv *Inventory) RemoveProduct(ctx context.Context, name string) (bool, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	id, ok := inv.nameIndex[strings.ToLower(name)]
	if !ok {
		return false, nil
	}

	e := inv.entries[id]
	if err := inv.repo.Delete(ctx, id); err != nil {
		return false, fmt.Errorf("error deleting product %s: %w", name, err)
	}

	delete(inv.nameIndex, strings.ToLower(e.product.Name))
	delete(inv.entries, id)

	inv.notifyListeners(fmt.Sprintf("Product removed: %s", name))
	return true, nil
}

// Products regresa una copia del catálogo sin orden particular.
func (inv *Inventory) Products() []entity.Product {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	products := make([]entity.Product, 0, len(inv.entries))
	for _, e := range inv.entries {
		products = append(products, e.product)
	}
	return products
}

// ProductsSortedByName regresa el catálogo ordenado alfabéticamente por
// nombre (case-insensitive, orden estable).
func (inv *Inventory) ProductsSortedByName() []entity.Product {
	products := inv.Products()
	sort.SliceStable(products, func(i, j int) bool {
		return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
	})
	return products
}

// ProductByIndex regresa el producto en la posición dada de la lista
// ordenada por nombre, el orden que ve el usuario del mostrador.
func (inv *Inventory) ProductByIndex(index int) (entity.Product, bool) {
	products := inv.ProductsSortedByName()
	if index < 0 || index >= len(products) {
		return entity.Product{}, false
	}
	return products[index], true
}

// ListWithStock regresa la vista ordenada de productos con existencias.
func (inv *Inventory) ListWithStock() []StockedProduct {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	list := make([]StockedProduct, 0, len(inv.entries))
	for _, e := range inv.entries {
		list = append(list, StockedProduct{Product: e.product, Stock: e.stock})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return strings.ToLower(list[i].Product.Name) < strings.ToLower(list[j].Product.Name)
	})
	return list
}

// notifyListeners difunde el mensaje a todos los listeners en orden de
// registro. Un listener que falla se registra en el log y se omite;
// nunca aborta la operación que originó el cambio.
func (inv *Inventory) notifyListeners(message string) {
	for _, l := range inv.listeners {
		safeNotify(l, message)
	}
}

func safeNotify(l port.ChangeListener, message string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("⚠️  Listener panic suppressed: %v", r)
		}
	}()
	if err := l.Notify(message); err != nil {
		log.Printf("⚠️  Listener error ignored: %v", err)
	}
}
