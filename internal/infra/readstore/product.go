package readstore

import (
	"context"

	"storefront-cart/internal/infra"
	"storefront-cart/internal/usecase/queries"
	"storefront-cart/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ProductReadStore serves both the catalog queries and the stock-snapshot
// reads the cart mutations depend on.
type ProductReadStore struct {
	pool *pgxpool.Pool
}

func NewProductReadStore(pool *pgxpool.Pool) *ProductReadStore {
	return &ProductReadStore{pool: pool}
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	const q = `
		SELECT id, name, description, price, image_url, stock, category_id, created_at
		FROM products
		WHERE id = $1`

	var view queries.ProductView
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&view.ID,
		&view.Name,
		&view.Description,
		&view.UnitPrice,
		&view.ImageURL,
		&view.Stock,
		&view.CategoryID,
		&view.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by id", err)
	}
	return &view, nil
}

func (r *ProductReadStore) List(ctx context.Context, filters queries.ProductFilters, limit, offset int) ([]*queries.ProductListItem, error) {
	const q = `
		SELECT id, name, price, image_url, stock
		FROM products
		WHERE ($1::uuid IS NULL OR category_id = $1)
		  AND (NOT $2::bool OR stock > 0)
		ORDER BY created_at DESC, id
		LIMIT $3 OFFSET $4`

	rows, err := r.pool.Query(ctx, q, filters.CategoryID, filters.InStock, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	items := make([]*queries.ProductListItem, 0, limit)
	for rows.Next() {
		var item queries.ProductListItem
		if err := rows.Scan(&item.ID, &item.Name, &item.UnitPrice, &item.ImageURL, &item.Stock); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}
	return items, nil
}

// Snapshot implements shared.ProductReads for the cart write side.
func (r *ProductReadStore) Snapshot(ctx context.Context, productID uuid.UUID) (*shared.ProductSnapshot, error) {
	const q = `
		SELECT id, name, price, image_url, stock
		FROM products
		WHERE id = $1`

	var snap shared.ProductSnapshot
	err := r.pool.QueryRow(ctx, q, productID).Scan(
		&snap.ID,
		&snap.Name,
		&snap.UnitPrice,
		&snap.ImageURL,
		&snap.Stock,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to snapshot product", err)
	}
	return &snap, nil
}
