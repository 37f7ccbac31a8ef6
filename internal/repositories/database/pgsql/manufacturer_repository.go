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

// PgxManufacturerRepository persists manufacturers with their two-deep
// previous-name columns.
type PgxManufacturerRepository struct {
	BaseRepository
}

func newPgxManufacturerRepository(pool *pgxpool.Pool) portsrepo.ManufacturerRepositoryFacade {
	return &PgxManufacturerRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ManufacturerRepositoryFacade = (*PgxManufacturerRepository)(nil)

const manufacturerColumns = `id, manufacturer_name, prev_manufacturer_name, prev_prev_manufacturer_name`

func scanManufacturer(row pgx.Row) (models.Manufacturer, error) {
	var m models.Manufacturer
	err := row.Scan(&m.ID, &m.ManufacturerName, &m.PrevName, &m.PrevPrevName)
	return m, err
}

func (r *PgxManufacturerRepository) ListManufacturers(ctx context.Context) ([]domain.Manufacturer, error) {
	query := `SELECT ` + manufacturerColumns + ` FROM manufacturers ORDER BY manufacturer_name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list manufacturers", err)
	}
	defer rows.Close()

	var ms []models.Manufacturer
	for rows.Next() {
		m, err := scanManufacturer(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan manufacturer", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to read manufacturers", err)
	}
	return mapping.ToDomainManufacturerSlice(ms), nil
}

func (r *PgxManufacturerRepository) FindManufacturerByID(ctx context.Context, id string) (*domain.Manufacturer, error) {
	query := `SELECT ` + manufacturerColumns + ` FROM manufacturers WHERE id = $1;`
	return r.findOne(ctx, query, id)
}

func (r *PgxManufacturerRepository) FindManufacturerByName(ctx context.Context, name string) (*domain.Manufacturer, error) {
	query := `SELECT ` + manufacturerColumns + ` FROM manufacturers WHERE manufacturer_name = $1;`
	return r.findOne(ctx, query, name)
}

func (r *PgxManufacturerRepository) FindManufacturerByOldName(ctx context.Context, name string) (*domain.Manufacturer, error) {
	query := `SELECT ` + manufacturerColumns + ` FROM manufacturers
		WHERE prev_manufacturer_name = $1 OR prev_prev_manufacturer_name = $1
		LIMIT 1;`
	return r.findOne(ctx, query, name)
}

func (r *PgxManufacturerRepository) findOne(ctx context.Context, query string, arg any) (*domain.Manufacturer, error) {
	m, err := scanManufacturer(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find manufacturer", err)
	}
	d := mapping.ToDomainManufacturer(m)
	return &d, nil
}

func (r *PgxManufacturerRepository) SaveManufacturer(ctx context.Context, manufacturer domain.Manufacturer) error {
	m := mapping.ToModelManufacturer(manufacturer)
	query := `
		INSERT INTO manufacturers (id, manufacturer_name, prev_manufacturer_name, prev_prev_manufacturer_name)
		VALUES ($1, $2, $3, $4);
	`
	_, err := r.Pool.Exec(ctx, query, m.ID, m.ManufacturerName, m.PrevName, m.PrevPrevName)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			if constraint == "ux_manufacturers_name" {
				return apperrors.NewExistsError("ManufacturerName", manufacturer.ManufacturerName)
			}
			return apperrors.NewExistsError("ID", manufacturer.ID)
		}
		return apperrors.NewAppError(500, "failed to save manufacturer", err)
	}
	return nil
}

func (r *PgxManufacturerRepository) UpdateManufacturer(ctx context.Context, manufacturer domain.Manufacturer) error {
	m := mapping.ToModelManufacturer(manufacturer)
	query := `
		UPDATE manufacturers
		SET manufacturer_name = $2, prev_manufacturer_name = $3, prev_prev_manufacturer_name = $4
		WHERE id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, m.ID, m.ManufacturerName, m.PrevName, m.PrevPrevName)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == "ux_manufacturers_name" {
			return apperrors.NewExistsError("ManufacturerName", manufacturer.ManufacturerName)
		}
		return apperrors.NewAppError(500, "failed to update manufacturer", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(manufacturer.ID)
	}
	return nil
}

func (r *PgxManufacturerRepository) DeleteManufacturer(ctx context.Context, id string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM manufacturers WHERE id = $1;`, id)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete manufacturer", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(id)
	}
	return nil
}
