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

// PgxPostRepository persists posts as an append-mostly version chain: every
// business key owns a set of rows, at most one of them flagged current.
type PgxPostRepository struct {
	BaseRepository
}

func newPgxPostRepository(pool *pgxpool.Pool) portsrepo.PostRepositoryFacade {
	return &PgxPostRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PostRepositoryFacade = (*PgxPostRepository)(nil)

const postColumns = `row_id, post_id, post_name, post_type, salary, is_actual, change_date`

func scanPost(row pgx.Row) (models.Post, error) {
	var m models.Post
	err := row.Scan(&m.RowID, &m.PostID, &m.PostName, &m.PostType, &m.Salary, &m.IsActual, &m.ChangeDate)
	return m, err
}

func collectPosts(rows pgx.Rows) ([]models.Post, error) {
	defer rows.Close()
	var ms []models.Post
	for rows.Next() {
		m, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, rows.Err()
}

func (r *PgxPostRepository) ListPosts(ctx context.Context) ([]domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE is_actual ORDER BY post_name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list posts", err)
	}
	ms, err := collectPosts(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan posts", err)
	}
	return mapping.ToDomainPostSlice(ms), nil
}

func (r *PgxPostRepository) ListPostWithHistory(ctx context.Context, postID string) ([]domain.PostVersion, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE post_id = $1 ORDER BY change_date DESC;`
	rows, err := r.Pool.Query(ctx, query, postID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list post history", err)
	}
	ms, err := collectPosts(rows)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan post history", err)
	}
	return mapping.ToDomainPostVersionSlice(ms), nil
}

func (r *PgxPostRepository) FindCurrentPostByID(ctx context.Context, postID string) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE post_id = $1 AND is_actual;`
	m, err := scanPost(r.Pool.QueryRow(ctx, query, postID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find post by id", err)
	}
	d := mapping.ToDomainPost(m)
	return &d, nil
}

func (r *PgxPostRepository) FindCurrentPostByName(ctx context.Context, name string) (*domain.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE post_name = $1 AND is_actual;`
	m, err := scanPost(r.Pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find post by name", err)
	}
	d := mapping.ToDomainPost(m)
	return &d, nil
}

func (r *PgxPostRepository) SavePost(ctx context.Context, post domain.Post) error {
	query := `
		INSERT INTO posts (row_id, post_id, post_name, post_type, salary, is_actual, change_date)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6);
	`
	_, err := r.Pool.Exec(ctx, query, uuid.NewString(), post.PostID, post.PostName, string(post.PostType), post.Salary, time.Now().UTC())
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			switch constraint {
			case "ux_posts_post_name_actual":
				return apperrors.NewExistsError("PostName", post.PostName)
			default:
				return apperrors.NewExistsError("PostID", post.PostID)
			}
		}
		return apperrors.NewAppError(500, "failed to save post", err)
	}
	return nil
}

// UpdatePost performs the temporal swap: the current row for the business key
// is locked, flipped to non-current, and a fresh current row is inserted, all
// in one transaction.
func (r *PgxPostRepository) UpdatePost(ctx context.Context, post domain.Post) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	current, err := lockCurrentPostRow(ctx, tx, post.PostID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `UPDATE posts SET is_actual = FALSE WHERE row_id = $1;`, current.RowID); err != nil {
		return apperrors.NewAppError(500, "failed to retire current post version", err)
	}

	insert := `
		INSERT INTO posts (row_id, post_id, post_name, post_type, salary, is_actual, change_date)
		VALUES ($1, $2, $3, $4, $5, TRUE, $6);
	`
	if _, err := tx.Exec(ctx, insert, uuid.NewString(), post.PostID, post.PostName, string(post.PostType), post.Salary, time.Now().UTC()); err != nil {
		if constraint, ok := uniqueViolation(err); ok && constraint == "ux_posts_post_name_actual" {
			return apperrors.NewExistsError("PostName", post.PostName)
		}
		return apperrors.NewAppError(500, "failed to insert new post version", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxPostRepository) DeletePost(ctx context.Context, postID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Will be ignored if transaction is committed successfully

	current, err := lockCurrentPostRow(ctx, tx, postID)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `UPDATE posts SET is_actual = FALSE WHERE row_id = $1;`, current.RowID); err != nil {
		return apperrors.NewAppError(500, "failed to delete post", err)
	}

	return r.Commit(ctx, tx)
}

// RestorePost re-flags the most recent version of the business key as
// current. The partial unique index rejects the restore if a current row
// somehow still exists.
func (r *PgxPostRepository) RestorePost(ctx context.Context, postID string) error {
	query := `
		UPDATE posts SET is_actual = TRUE
		WHERE row_id = (
			SELECT row_id FROM posts WHERE post_id = $1 ORDER BY change_date DESC LIMIT 1
		);
	`
	tag, err := r.Pool.Exec(ctx, query, postID)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return apperrors.NewExistsError("PostID", postID)
		}
		return apperrors.NewAppError(500, "failed to restore post", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(postID)
	}
	return nil
}

// lockCurrentPostRow fetches the current version of a business key FOR
// UPDATE. A key with rows but no current row is reported as deleted, a key
// with no rows at all as not found.
func lockCurrentPostRow(ctx context.Context, tx pgx.Tx, postID string) (models.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts WHERE post_id = $1 AND is_actual FOR UPDATE;`
	m, err := scanPost(tx.QueryRow(ctx, query, postID))
	if err == nil {
		return m, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return models.Post{}, apperrors.NewAppError(500, "failed to lock current post version", err)
	}

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM posts WHERE post_id = $1);`, postID).Scan(&exists); err != nil {
		return models.Post{}, apperrors.NewAppError(500, "failed to check post existence", err)
	}
	if exists {
		return models.Post{}, apperrors.NewDeletedError(postID)
	}
	return models.Post{}, apperrors.NewNotFoundError(postID)
}
