package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/topaz-jewels/backoffice_app/internal/apperrors"
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	portsrepo "github.com/topaz-jewels/backoffice_app/internal/core/ports/repositories"
	"github.com/topaz-jewels/backoffice_app/internal/models"
	"github.com/topaz-jewels/backoffice_app/internal/utils/mapping"
)

// PgxProductRepository persists catalog products and their append-only price
// history.
type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(pool *pgxpool.Pool) portsrepo.ProductRepositoryFacade {
	return &PgxProductRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ProductRepositoryFacade = (*PgxProductRepository)(nil)

const productColumns = `id, manufacturer_id, product_name, product_type, price, is_deleted`

func scanProduct(row pgx.Row) (models.Product, error) {
	var m models.Product
	err := row.Scan(&m.ID, &m.ManufacturerID, &m.ProductName, &m.ProductType, &m.Price, &m.IsDeleted)
	return m, err
}

func (r *PgxProductRepository) ListProducts(ctx context.Context, onlyActive bool, manufacturerID *string) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
		WHERE (NOT $1 OR NOT is_deleted)
		  AND ($2::uuid IS NULL OR manufacturer_id = $2)
		ORDER BY product_name;`
	rows, err := r.Pool.Query(ctx, query, onlyActive, manufacturerID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list products", err)
	}
	defer rows.Close()

	var ms []models.Product
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read products", err)
	}
	return mapping.ToDomainProductSlice(ms), nil
}

func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND NOT is_deleted;`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find product by id", err)
	}
	d := mapping.ToDomainProduct(m)
	return &d, nil
}

func (r *PgxProductRepository) FindProductByName(ctx context.Context, name string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_name = $1 AND NOT is_deleted;`
	m, err := scanProduct(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find product by name", err)
	}
	d := mapping.ToDomainProduct(m)
	return &d, nil
}

func (r *PgxProductRepository) ListProductHistory(ctx context.Context, productID string) ([]domain.ProductHistory, error) {
	query := `SELECT id, product_id, old_price, change_date FROM product_history
		WHERE product_id = $1 ORDER BY change_date DESC;`
	rows, err := r.Pool.Query(ctx, query, productID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list product history", err)
	}
	defer rows.Close()

	var ms []models.ProductHistory
	for rows.Next() {
		var m models.ProductHistory
		if err := rows.Scan(&m.ID, &m.ProductID, &m.OldPrice, &m.ChangeDate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product history", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read product history", err)
	}
	return mapping.ToDomainProductHistorySlice(ms), nil
}

func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)
	query := `
		INSERT INTO products (id, manufacturer_id, product_name, product_type, price, is_deleted)
		VALUES ($1, $2, $3, $4, $5, FALSE);
	`
	_, err := r.Pool.Exec(ctx, query, m.ID, m.ManufacturerID, m.ProductName, m.ProductType, m.Price)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == "ux_products_name_active" {
				return apperrors.NewExistsError("ProductName", product.ProductName)
			}
			return apperrors.NewExistsError("ID", product.ID)
		}
		return apperrors.NewAppError(500, "failed to save product", err)
	}
	return nil
}

// UpdateProduct replaces the product attributes and, when the price changed,
// records the old price in product_history within the same transaction.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	current, err := lockProductRow(ctx, tx, product.ID)
	if err != nil {
		return err
	}

	m := mapping.ToModelProduct(product)
	update := `
		UPDATE products SET manufacturer_id = $2, product_name = $3, product_type = $4, price = $5
		WHERE id = $1;
	`
	if _, err := tx.Exec(ctx, update, m.ID, m.ManufacturerID, m.ProductName, m.ProductType, m.Price); err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == "ux_products_name_active" {
			return apperrors.NewExistsError("ProductName", product.ProductName)
		}
		return apperrors.NewAppError(500, "failed to update product", err)
	}

	if !current.Price.Equal(product.Price) {
		history := `
			INSERT INTO product_history (id, product_id, old_price, change_date)
			VALUES ($1, $2, $3, $4);
		`
		if _, err := tx.Exec(ctx, history, uuid.NewString(), product.ID, current.Price, time.Now().UTC()); err != nil {
			return apperrors.NewAppError(500, "failed to record price history", err)
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	if _, err := lockProductRow(ctx, tx, productID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE products SET is_deleted = TRUE WHERE id = $1;`, productID); err != nil {
		return apperrors.NewAppError(500, "failed to delete product", err)
	}

	return r.Commit(ctx, tx)
}

// lockProductRow fetches a product FOR UPDATE, distinguishing a soft-deleted
// product from a missing one.
func lockProductRow(ctx context.Context, tx pgx.Tx, productID string) (models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE;`
	m, err := scanProduct(tx.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Product{}, apperrors.NewNotFoundError(productID)
		}
		return models.Product{}, apperrors.NewAppError(500, "failed to lock product", err)
	}
	if m.IsDeleted {
		return models.Product{}, apperrors.NewDeletedError(productID)
	}
	return m, nil
}
