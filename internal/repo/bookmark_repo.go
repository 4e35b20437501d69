package repo

import (
	"context"
	"encoding/json"
	"fmt"

	dom "github.com/apolzek/neosearch/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookmarkCols = `id, user_id, url, description, tags, category, source, is_public, created_at`

// BookmarkRepo provides bookmark persistence. All lookups are owner scoped
// except the public-visibility queries, which drop the owner filter but
// keep the is_public predicate.
type BookmarkRepo interface {
	Create(ctx context.Context, b dom.Bookmark) (dom.Bookmark, error)
	ListByUser(ctx context.Context, userID int64) ([]dom.Bookmark, error)
	ListPublicByUser(ctx context.Context, userID int64) ([]dom.Bookmark, error)
	Delete(ctx context.Context, userID, id int64) error
	SearchOwned(ctx context.Context, userID int64, keyword, field string) ([]dom.Bookmark, error)
	SearchPublic(ctx context.Context, keyword, field string) ([]dom.PublicBookmark, error)
}

// PGBookmarkRepo implements BookmarkRepo with Postgres.
type PGBookmarkRepo struct {
	db *pgxpool.Pool
}

// NewPGBookmarkRepo returns a new PGBookmarkRepo.
func NewPGBookmarkRepo(db *pgxpool.Pool) *PGBookmarkRepo {
	return &PGBookmarkRepo{db: db}
}

func (r *PGBookmarkRepo) Create(ctx context.Context, b dom.Bookmark) (dom.Bookmark, error) {
	tags, err := json.Marshal(b.Tags)
	if err != nil {
		return dom.Bookmark{}, fmt.Errorf("marshal tags: %w", err)
	}
	query := `
		INSERT INTO bookmarks (user_id, url, description, tags, category, source, is_public)
		VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7)
		RETURNING ` + bookmarkCols
	row := r.db.QueryRow(ctx, query,
		b.UserID, b.URL, b.Description, string(tags), b.Category, b.Source, b.IsPublic)
	return scanBookmark(row)
}

func (r *PGBookmarkRepo) ListByUser(ctx context.Context, userID int64) ([]dom.Bookmark, error) {
	query := `
		SELECT ` + bookmarkCols + `
		FROM bookmarks WHERE user_id = $1 ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookmarks(rows)
}

func (r *PGBookmarkRepo) ListPublicByUser(ctx context.Context, userID int64) ([]dom.Bookmark, error) {
	query := `
		SELECT ` + bookmarkCols + `
		FROM bookmarks WHERE user_id = $1 AND is_public ORDER BY created_at DESC, id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookmarks(rows)
}

// Delete removes the bookmark if it belongs to the user. Returns
// pgx.ErrNoRows when it is absent or owned by someone else.
func (r *PGBookmarkRepo) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM bookmarks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// SearchOwned returns the user's bookmarks matching keyword/field,
// any visibility, most recent first. Empty keyword returns everything.
func (r *PGBookmarkRepo) SearchOwned(ctx context.Context, userID int64, keyword, field string) ([]dom.Bookmark, error) {
	query := `
		SELECT ` + bookmarkCols + `
		FROM bookmarks WHERE user_id = $1`
	args := []any{userID}
	if keyword != "" {
		query += ` AND ` + matchClause(field, 2)
		args = append(args, likePattern(keyword))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookmarks(rows)
}

// SearchPublic returns public bookmarks across all users matching
// keyword/field, each carrying the owner's username.
func (r *PGBookmarkRepo) SearchPublic(ctx context.Context, keyword, field string) ([]dom.PublicBookmark, error) {
	query := `
		SELECT b.id, b.user_id, b.url, b.description, b.tags, b.category, b.source, b.is_public, b.created_at, u.username
		FROM bookmarks b JOIN users u ON u.id = b.user_id
		WHERE b.is_public`
	var args []any
	if keyword != "" {
		query += ` AND ` + matchClause(field, 1)
		args = append(args, likePattern(keyword))
	}
	query += ` ORDER BY b.created_at DESC, b.id DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []dom.PublicBookmark
	for rows.Next() {
		var b dom.PublicBookmark
		var tags []byte
		if err := rows.Scan(&b.ID, &b.UserID, &b.URL, &b.Description, &tags,
			&b.Category, &b.Source, &b.IsPublic, &b.CreatedAt, &b.Username); err != nil {
			return nil, err
		}
		if err := unmarshalTags(tags, &b.Tags); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// matchClause builds the ILIKE predicate for one positional argument.
// field must be empty or pass search.ValidField; callers enforce that.
func matchClause(field string, arg int) string {
	p := fmt.Sprintf("$%d", arg)
	switch field {
	case "url", "description", "category", "source":
		return field + " ILIKE " + p
	case "tags":
		return tagClause(p)
	default:
		return `(url ILIKE ` + p +
			` OR description ILIKE ` + p +
			` OR category ILIKE ` + p +
			` OR ` + tagClause(p) + `)`
	}
}

func tagClause(p string) string {
	return `EXISTS (SELECT 1 FROM jsonb_array_elements_text(tags) tag WHERE tag ILIKE ` + p + `)`
}

func likePattern(keyword string) string {
	return "%" + keyword + "%"
}

func scanBookmark(row pgx.Row) (dom.Bookmark, error) {
	var b dom.Bookmark
	var tags []byte
	err := row.Scan(&b.ID, &b.UserID, &b.URL, &b.Description, &tags,
		&b.Category, &b.Source, &b.IsPublic, &b.CreatedAt)
	if err != nil {
		return dom.Bookmark{}, err
	}
	if err := unmarshalTags(tags, &b.Tags); err != nil {
		return dom.Bookmark{}, err
	}
	return b, nil
}

func collectBookmarks(rows pgx.Rows) ([]dom.Bookmark, error) {
	var list []dom.Bookmark
	for rows.Next() {
		var b dom.Bookmark
		var tags []byte
		if err := rows.Scan(&b.ID, &b.UserID, &b.URL, &b.Description, &tags,
			&b.Category, &b.Source, &b.IsPublic, &b.CreatedAt); err != nil {
			return nil, err
		}
		if err := unmarshalTags(tags, &b.Tags); err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func unmarshalTags(raw []byte, dst *[]string) error {
	*dst = []string{}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("unmarshal tags: %w", err)
	}
	return nil
}
