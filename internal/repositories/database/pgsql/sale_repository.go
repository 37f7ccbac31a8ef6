package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/topaz-jewels/backoffice_app/internal/apperrors"
	"github.com/topaz-jewels/backoffice_app/internal/core/domain"
	portsrepo "github.com/topaz-jewels/backoffice_app/internal/core/ports/repositories"
	"github.com/topaz-jewels/backoffice_app/internal/models"
	"github.com/topaz-jewels/backoffice_app/internal/utils/mapping"
)

// PgxSaleRepository persists sales and their line items across the sales and
// sale_products tables.
type PgxSaleRepository struct {
	BaseRepository
}

func newPgxSaleRepository(pool *pgxpool.Pool) portsrepo.SaleRepositoryFacade {
	return &PgxSaleRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.SaleRepositoryFacade = (*PgxSaleRepository)(nil)

const saleColumns = `id, worker_id, buyer_id, sale_date, sum, discount_type, discount, is_cancel`

func scanSale(row pgx.Row) (models.Sale, error) {
	var m models.Sale
	err := row.Scan(&m.ID, &m.WorkerID, &m.BuyerID, &m.SaleDate, &m.Sum, &m.DiscountType, &m.Discount, &m.IsCancel)
	return m, err
}

func (r *PgxSaleRepository) ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error) {
	// The date range applies only when both bounds are set, inclusive of the
	// start and exclusive of the end.
	query := `SELECT ` + saleColumns + ` FROM sales
		WHERE ($1::timestamptz IS NULL OR $2::timestamptz IS NULL OR (sale_date >= $1 AND sale_date < $2))
		  AND ($3::uuid IS NULL OR worker_id = $3)
		  AND ($4::uuid IS NULL OR buyer_id = $4)
		  AND ($5::uuid IS NULL OR EXISTS (
				SELECT 1 FROM sale_products sp WHERE sp.sale_id = sales.id AND sp.product_id = $5
		  ))
		ORDER BY sale_date;`
	rows, err := r.Pool.Query(ctx, query,
		filter.FromDate, filter.ToDate, filter.WorkerID, filter.BuyerID, filter.ProductID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list sales", err)
	}
	defer rows.Close()

	var (
		sales   []models.Sale
		saleIDs []string
	)
	for rows.Next() {
		m, err := scanSale(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sale", err)
		}
		sales = append(sales, m)
		saleIDs = append(saleIDs, m.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read sales", err)
	}

	itemsBySale, err := r.loadItems(ctx, saleIDs)
	if err != nil {
		return nil, err
	}

	ds := make([]domain.Sale, len(sales))
	for i, m := range sales {
		ds[i] = mapping.ToDomainSale(m, itemsBySale[m.ID])
	}
	return ds, nil
}

func (r *PgxSaleRepository) FindSaleByID(ctx context.Context, saleID string) (*domain.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1;`
	m, err := scanSale(r.Pool.QueryRow(ctx, query, saleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find sale by id", err)
	}

	itemsBySale, err := r.loadItems(ctx, []string{saleID})
	if err != nil {
		return nil, err
	}

	d := mapping.ToDomainSale(m, itemsBySale[saleID])
	return &d, nil
}

// SaveSale inserts the sale row and all line items in one transaction; the
// items go through a single batch round trip. The cancel flag is forced
// false: a sale is never born cancelled.
func (r *PgxSaleRepository) SaveSale(ctx context.Context, sale domain.Sale) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	m := mapping.ToModelSale(sale)
	insertSale := `
		INSERT INTO sales (id, worker_id, buyer_id, sale_date, sum, discount_type, discount, is_cancel)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE);
	`
	if _, err := tx.Exec(ctx, insertSale, m.ID, m.WorkerID, m.BuyerID, m.SaleDate, m.Sum, m.DiscountType, m.Discount); err != nil {
		if _, ok := uniqueViolation(err); ok {
			return apperrors.NewExistsError("ID", sale.ID)
		}
		return apperrors.NewAppError(500, "failed to save sale", err)
	}

	insertItem := `
		INSERT INTO sale_products (sale_id, product_id, count, price)
		VALUES ($1, $2, $3, $4);
	`
	batch := &pgx.Batch{}
	for _, p := range sale.Products {
		item := mapping.ToModelSaleProduct(p)
		batch.Queue(insertItem, item.SaleID, item.ProductID, item.Count, item.Price)
	}
	br := tx.SendBatch(ctx, batch)
	for range sale.Products {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return apperrors.NewAppError(500, "failed to save sale line items", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close sale item batch", err)
	}

	return r.Commit(ctx, tx)
}

// CancelSale flips the one-way cancel flag. A second cancel is reported as an
// already-deleted element, not silently ignored.
func (r *PgxSaleRepository) CancelSale(ctx context.Context, saleID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	var isCancel bool
	err = tx.QueryRow(ctx, `SELECT is_cancel FROM sales WHERE id = $1 FOR UPDATE;`, saleID).Scan(&isCancel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError(saleID)
		}
		return apperrors.NewAppError(500, "failed to lock sale", err)
	}
	if isCancel {
		return apperrors.NewDeletedError(saleID)
	}

	if _, err := tx.Exec(ctx, `UPDATE sales SET is_cancel = TRUE WHERE id = $1;`, saleID); err != nil {
		return apperrors.NewAppError(500, "failed to cancel sale", err)
	}

	return r.Commit(ctx, tx)
}

// loadItems fetches the line items of the given sales in one query, grouped
// by sale id.
func (r *PgxSaleRepository) loadItems(ctx context.Context, saleIDs []string) (map[string][]models.SaleProduct, error) {
	itemsBySale := make(map[string][]models.SaleProduct, len(saleIDs))
	if len(saleIDs) == 0 {
		return itemsBySale, nil
	}

	query := `SELECT sale_id, product_id, count, price FROM sale_products WHERE sale_id = ANY($1);`
	rows, err := r.Pool.Query(ctx, query, saleIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list sale line items", err)
	}
	defer rows.Close()

	for rows.Next() {
		var m models.SaleProduct
		if err := rows.Scan(&m.SaleID, &m.ProductID, &m.Count, &m.Price); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan sale line item", err)
		}
		itemsBySale[m.SaleID] = append(itemsBySale[m.SaleID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read sale line items", err)
	}
	return itemsBySale, nil
}
