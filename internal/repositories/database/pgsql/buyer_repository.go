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

// PgxBuyerRepository persists buyers. The phone number carries a unique
// constraint and doubles as the non-id lookup key.
type PgxBuyerRepository struct {
	BaseRepository
}

func newPgxBuyerRepository(pool *pgxpool.Pool) portsrepo.BuyerRepositoryFacade {
	return &PgxBuyerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.BuyerRepositoryFacade = (*PgxBuyerRepository)(nil)

const buyerColumns = `id, full_name, phone_number, discount_size`

func scanBuyer(row pgx.Row) (models.Buyer, error) {
	var m models.Buyer
	err := row.Scan(&m.ID, &m.FullName, &m.PhoneNumber, &m.DiscountSize)
	return m, err
}

func (r *PgxBuyerRepository) ListBuyers(ctx context.Context) ([]domain.Buyer, error) {
	query := `SELECT ` + buyerColumns + ` FROM buyers ORDER BY full_name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list buyers", err)
	}
	defer rows.Close()

	var ms []models.Buyer
	for rows.Next() {
		m, err := scanBuyer(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan buyer", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read buyers", err)
	}
	return mapping.ToDomainBuyerSlice(ms), nil
}

func (r *PgxBuyerRepository) FindBuyerByID(ctx context.Context, buyerID string) (*domain.Buyer, error) {
	query := `SELECT ` + buyerColumns + ` FROM buyers WHERE id = $1;`
	m, err := scanBuyer(r.Pool.QueryRow(ctx, query, buyerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find buyer by id", err)
	}
	d := mapping.ToDomainBuyer(m)
	return &d, nil
}

func (r *PgxBuyerRepository) FindBuyerByPhone(ctx context.Context, phoneNumber string) (*domain.Buyer, error) {
	query := `SELECT ` + buyerColumns + ` FROM buyers WHERE phone_number = $1;`
	m, err := scanBuyer(r.Pool.QueryRow(ctx, query, phoneNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find buyer by phone", err)
	}
	d := mapping.ToDomainBuyer(m)
	return &d, nil
}

func (r *PgxBuyerRepository) SaveBuyer(ctx context.Context, buyer domain.Buyer) error {
	m := mapping.ToModelBuyer(buyer)
	query := `
		INSERT INTO buyers (id, full_name, phone_number, discount_size)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, m.ID, m.FullName, m.PhoneNumber, m.DiscountSize)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == "ux_buyers_phone" {
				return apperrors.NewExistsError("PhoneNumber", buyer.PhoneNumber)
			}
			return apperrors.NewExistsError("ID", buyer.ID)
		}
		return apperrors.NewAppError(500, "failed to save buyer", err)
	}
	return nil
}

func (r *PgxBuyerRepository) UpdateBuyer(ctx context.Context, buyer domain.Buyer) error {
	m := mapping.ToModelBuyer(buyer)
	query := `
		UPDATE buyers SET full_name = $2, phone_number = $3, discount_size = $4
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ID, m.FullName, m.PhoneNumber, m.DiscountSize)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == "ux_buyers_phone" {
			return apperrors.NewExistsError("PhoneNumber", buyer.PhoneNumber)
		}
		return apperrors.NewAppError(500, "failed to update buyer", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(buyer.ID)
	}
	return nil
}

func (r *PgxBuyerRepository) DeleteBuyer(ctx context.Context, buyerID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM buyers WHERE id = $1;`, buyerID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete buyer", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(buyerID)
	}
	return nil
}
