package repo

import (
	"context"

	dom "github.com/apolzek/neosearch/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	GetByID(ctx context.Context, id int64) (dom.User, error)
	Create(ctx context.Context, username, passwordHash string) (dom.User, error)
	ListWithPublicContent(ctx context.Context) ([]dom.PublicUser, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// GetByUsername returns the user by username.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// GetByID returns the user by id.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, username, passwordHash string) (dom.User, error) {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, username, password_hash, created_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query, username, passwordHash).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)
	return u, err
}

// ListWithPublicContent returns users owning at least one public bookmark
// or repository, with their public counts.
func (r *PGUserRepo) ListWithPublicContent(ctx context.Context) ([]dom.PublicUser, error) {
	query := `
		SELECT u.username,
		       COUNT(DISTINCT b.id) FILTER (WHERE b.is_public),
		       COUNT(DISTINCT rp.id) FILTER (WHERE rp.is_public)
		FROM users u
		LEFT JOIN bookmarks b ON b.user_id = u.id
		LEFT JOIN repositories rp ON rp.user_id = u.id
		GROUP BY u.id, u.username
		HAVING COUNT(b.id) FILTER (WHERE b.is_public) > 0
		    OR COUNT(rp.id) FILTER (WHERE rp.is_public) > 0
		ORDER BY u.username`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.PublicUser
	for rows.Next() {
		var u dom.PublicUser
		if err := rows.Scan(&u.Username, &u.PublicBookmarks, &u.PublicRepositories); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}
