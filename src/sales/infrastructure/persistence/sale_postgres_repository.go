package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"pos/src/sales/domain/entity"
	"pos/src/sales/domain/port"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL.
// Venta e items se insertan en una transacción para garantizar que una
// venta cerrada nunca quede a medias en la base.
type SalePostgresRepository struct {
	db *sql.DB
}

// NewSalePostgresRepository crea una nueva instancia del repositorio.
func NewSalePostgresRepository(db *sql.DB) *SalePostgresRepository {
	return &SalePostgresRepository{db: db}
}

// EnsureSchema crea las tablas de ventas si no existen.
func (r *SalePostgresRepository) EnsureSchema(ctx context.Context) error {
	querySales := `
		CREATE TABLE IF NOT EXISTS sales (
			id         UUID PRIMARY KEY,
			total      NUMERIC NOT NULL,
			status     TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`
	if _, err := r.db.ExecContext(ctx, querySales); err != nil {
		return fmt.Errorf("error creating sales table: %w", err)
	}

	queryItems := `
		CREATE TABLE IF NOT EXISTS sale_items (
			sale_id      UUID NOT NULL REFERENCES sales(id),
			product_id   TEXT NOT NULL,
			product_name TEXT NOT NULL,
			kind         TEXT NOT NULL,
			quantity     NUMERIC NOT NULL,
			unit_price   NUMERIC NOT NULL,
			subtotal     NUMERIC NOT NULL
		)
	`
	if _, err := r.db.ExecContext(ctx, queryItems); err != nil {
		return fmt.Errorf("error creating sale_items table: %w", err)
	}
	return nil
}

// Create persiste una venta cerrada con sus items.
func (r *SalePostgresRepository) Create(ctx context.Context, sale *entity.Sale) error {
	if sale == nil {
		return entity.ErrNilSale
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	querySale := `
		INSERT INTO sales (id, total, status, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err = tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.Total(),
		string(sale.Status()),
		sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating sale: %w", err)
	}

	queryItem := `
		INSERT INTO sale_items (sale_id, product_id, product_name, kind, quantity, unit_price, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	for _, it := range sale.Items() {
		_, err = tx.ExecContext(ctx, queryItem,
			sale.ID,
			it.Product.ID,
			it.Product.Name,
			string(it.Product.Kind),
			it.Quantity,
			it.Product.UnitPrice,
			it.Subtotal(),
		)
		if err != nil {
			return fmt.Errorf("error creating sale_item for product %s: %w", it.Product.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// List regresa todas las ventas persistidas con sus items.
func (r *SalePostgresRepository) List(ctx context.Context) ([]port.SaleRecord, error) {
	querySales := `
		SELECT id, total, status, created_at
		FROM sales
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, querySales)
	if err != nil {
		return nil, fmt.Errorf("error querying sales: %w", err)
	}
	defer rows.Close()

	var sales []port.SaleRecord
	for rows.Next() {
		var rec port.SaleRecord
		if err := rows.Scan(&rec.ID, &rec.Total, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning sale: %w", err)
		}
		sales = append(sales, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales: %w", err)
	}

	queryItems := `
		SELECT product_id, product_name, kind, quantity, unit_price, subtotal
		FROM sale_items
		WHERE sale_id = $1
	`
	for i := range sales {
		itemRows, err := r.db.QueryContext(ctx, queryItems, sales[i].ID)
		if err != nil {
			return nil, fmt.Errorf("error querying sale_items: %w", err)
		}

		var items []port.SaleItemRecord
		for itemRows.Next() {
			var it port.SaleItemRecord
			err := itemRows.Scan(&it.ProductID, &it.ProductName, &it.Kind, &it.Quantity, &it.UnitPrice, &it.Subtotal)
			if err != nil {
				itemRows.Close()
				return nil, fmt.Errorf("error scanning sale_item: %w", err)
			}
			items = append(items, it)
		}
		itemRows.Close()
		if err := itemRows.Err(); err != nil {
			return nil, fmt.Errorf("error iterating sale_items: %w", err)
		}

		sales[i].Items = items
	}

	return sales, nil
}
