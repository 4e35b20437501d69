package repo

import (
	"context"
	"encoding/json"
	"fmt"

	dom "github.com/apolzek/neosearch/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const repositoryCols = `id, user_id, name, url, is_public, last_synced, created_at`

// RepositoryRepo provides repository persistence plus the two operations
// that must span repositories and bookmarks atomically: replacing a
// repository's imported bookmark set and cascade deletion.
type RepositoryRepo interface {
	Create(ctx context.Context, r dom.Repository) (dom.Repository, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Repository, error)
	ListByUser(ctx context.Context, userID int64) ([]dom.Repository, error)
	ListPublicByUser(ctx context.Context, userID int64) ([]dom.Repository, error)
	ReplaceSource(ctx context.Context, repositoryID int64, bookmarks []dom.Bookmark) error
	DeleteCascade(ctx context.Context, userID, id int64) error
}

// PGRepositoryRepo implements RepositoryRepo with Postgres.
type PGRepositoryRepo struct {
	db *pgxpool.Pool
}

// NewPGRepositoryRepo returns a new PGRepositoryRepo.
func NewPGRepositoryRepo(db *pgxpool.Pool) *PGRepositoryRepo {
	return &PGRepositoryRepo{db: db}
}

func (r *PGRepositoryRepo) Create(ctx context.Context, rep dom.Repository) (dom.Repository, error) {
	query := `
		INSERT INTO repositories (user_id, name, url, is_public)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + repositoryCols
	var out dom.Repository
	err := r.db.QueryRow(ctx, query, rep.UserID, rep.Name, rep.URL, rep.IsPublic).Scan(
		&out.ID, &out.UserID, &out.Name, &out.URL, &out.IsPublic, &out.LastSynced, &out.CreatedAt,
	)
	return out, err
}

func (r *PGRepositoryRepo) GetByID(ctx context.Context, userID, id int64) (dom.Repository, error) {
	query := `
		SELECT ` + repositoryCols + `
		FROM repositories WHERE id = $1 AND user_id = $2`
	var out dom.Repository
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&out.ID, &out.UserID, &out.Name, &out.URL, &out.IsPublic, &out.LastSynced, &out.CreatedAt,
	)
	return out, err
}

func (r *PGRepositoryRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Repository, error) {
	return r.list(ctx, `SELECT `+repositoryCols+`
		FROM repositories WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
}

func (r *PGRepositoryRepo) ListPublicByUser(ctx context.Context, userID int64) ([]dom.Repository, error) {
	return r.list(ctx, `SELECT `+repositoryCols+`
		FROM repositories WHERE user_id = $1 AND is_public ORDER BY created_at DESC, id DESC`, userID)
}

func (r *PGRepositoryRepo) list(ctx context.Context, query string, args ...any) ([]dom.Repository, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Repository
	for rows.Next() {
		var rep dom.Repository
		if err := rows.Scan(&rep.ID, &rep.UserID, &rep.Name, &rep.URL,
			&rep.IsPublic, &rep.LastSynced, &rep.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, rep)
	}
	return list, rows.Err()
}

// ReplaceSource atomically swaps the repository's imported bookmark set:
// in one transaction it deletes every bookmark whose source equals the
// repository name, inserts the given bookmarks and stamps last_synced.
// Concurrent readers never observe the intermediate empty state.
func (r *PGRepositoryRepo) ReplaceSource(ctx context.Context, repositoryID int64, bookmarks []dom.Bookmark) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID int64
	var name string
	err = tx.QueryRow(ctx,
		`SELECT user_id, name FROM repositories WHERE id = $1 FOR UPDATE`,
		repositoryID,
	).Scan(&userID, &name)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND source = $2`, userID, name); err != nil {
		return fmt.Errorf("delete by source: %w", err)
	}

	for _, b := range bookmarks {
		tags, err := json.Marshal(b.Tags)
		if err != nil {
			return fmt.Errorf("marshal tags: %w", err)
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO bookmarks (user_id, url, description, tags, category, source, is_public)
			VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7)`,
			b.UserID, b.URL, b.Description, string(tags), b.Category, b.Source, b.IsPublic,
		); err != nil {
			return fmt.Errorf("insert bookmark: %w", err)
		}
	}

	if _, err := tx.Exec(ctx,
		`UPDATE repositories SET last_synced = NOW() WHERE id = $1`, repositoryID); err != nil {
		return fmt.Errorf("touch last_synced: %w", err)
	}

	return tx.Commit(ctx)
}

// DeleteCascade removes the repository and exactly the bookmarks whose
// source equals its name, in one transaction. Manually added bookmarks
// (source IS NULL) are never touched. Returns pgx.ErrNoRows when the
// repository is absent or not owned by the user.
func (r *PGRepositoryRepo) DeleteCascade(ctx context.Context, userID, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var name string
	err = tx.QueryRow(ctx,
		`SELECT name FROM repositories WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		id, userID,
	).Scan(&name)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM bookmarks WHERE user_id = $1 AND source = $2`, userID, name); err != nil {
		return fmt.Errorf("delete by source: %w", err)
	}
	tag, err := tx.Exec(ctx,
		`DELETE FROM repositories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}
