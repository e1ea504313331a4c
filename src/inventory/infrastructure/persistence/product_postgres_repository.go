package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"pos/src/inventory/domain/entity"
	"pos/src/inventory/domain/port"

	"github.com/shopspring/decimal"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL.
// Sin transacciones ni lógica: una fila por producto en la tabla inventory.
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository crea una nueva instancia del repositorio.
func NewProductPostgresRepository(db *sql.DB) *ProductPostgresRepository {
	return &ProductPostgresRepository{db: db}
}

// EnsureSchema crea la tabla de inventario si no existe.
// La unicidad del nombre en la base refleja la invariante del dominio.
func (r *ProductPostgresRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS inventory (
			id    TEXT PRIMARY KEY,
			name  TEXT UNIQUE NOT NULL,
			price NUMERIC NOT NULL,
			stock NUMERIC NOT NULL,
			type  TEXT NOT NULL
		)
	`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("error creating inventory table: %w", err)
	}
	return nil
}

// LoadAll regresa todas las filas del inventario.
func (r *ProductPostgresRepository) LoadAll(ctx context.Context) ([]port.ProductRecord, error) {
	query := `
		SELECT id, name, price, stock, type
		FROM inventory
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying inventory: %w", err)
	}
	defer rows.Close()

	var records []port.ProductRecord
	for rows.Next() {
		var rec port.ProductRecord
		var kind string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Price, &rec.Stock, &kind); err != nil {
			return nil, fmt.Errorf("error scanning inventory row: %w", err)
		}
		rec.Kind = entity.ProductKind(kind)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inventory rows: %w", err)
	}

	return records, nil
}

// Insert persiste un producto nuevo con su stock inicial.
func (r *ProductPostgresRepository) Insert(ctx context.Context, product entity.Product, stock decimal.Decimal) error {
	query := `
		INSERT INTO inventory (id, name, price, stock, type)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.UnitPrice,
		stock,
		string(product.Kind),
	)
	if err != nil {
		return fmt.Errorf("error inserting product %s: %w", product.ID, err)
	}
	return nil
}

// Update reescribe nombre, precio y stock de un producto por su ID.
func (r *ProductPostgresRepository) Update(ctx context.Context, product entity.Product, stock decimal.Decimal) error {
	query := `
		UPDATE inventory
		SET name = $2, price = $3, stock = $4
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.UnitPrice,
		stock,
	)
	if err != nil {
		return fmt.Errorf("error updating product %s: %w", product.ID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("error updating product %s: no rows affected", product.ID)
	}
	return nil
}

// Delete elimina la fila de un producto por su ID.
func (r *ProductPostgresRepository) Delete(ctx context.Context, productID string) error {
	query := `DELETE FROM inventory WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, productID); err != nil {
		return fmt.Errorf("error deleting product %s: %w", productID, err)
	}
	return nil
}
