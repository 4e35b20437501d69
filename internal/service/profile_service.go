package service

import (
	"context"
	"errors"

	dom "github.com/apolzek/neosearch/internal/domain"
	"github.com/apolzek/neosearch/internal/repo"

	"github.com/jackc/pgx/v5"
)

// PublicProfile is everything an anonymous visitor may see about a user.
type PublicProfile struct {
	User         dom.User
	Repositories []dom.Repository
	Bookmarks    []dom.Bookmark
}

// ProfileService serves anonymous views of users' public content.
type ProfileService struct {
	users     repo.UserRepo
	repos     repo.RepositoryRepo
	bookmarks repo.BookmarkRepo
}

// NewProfileService returns a new ProfileService.
func NewProfileService(u repo.UserRepo, r repo.RepositoryRepo, b repo.BookmarkRepo) *ProfileService {
	return &ProfileService{users: u, repos: r, bookmarks: b}
}

// Get returns the public profile for username: public repositories and
// public bookmarks only.
func (s *ProfileService) Get(ctx context.Context, username string) (PublicProfile, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return PublicProfile{}, ErrNotFound
		}
		return PublicProfile{}, err
	}

	repositories, err := s.repos.ListPublicByUser(ctx, u.ID)
	if err != nil {
		return PublicProfile{}, err
	}
	bookmarks, err := s.bookmarks.ListPublicByUser(ctx, u.ID)
	if err != nil {
		return PublicProfile{}, err
	}

	return PublicProfile{User: u, Repositories: repositories, Bookmarks: bookmarks}, nil
}

// ListUsers returns users owning any public content.
func (s *ProfileService) ListUsers(ctx context.Context) ([]dom.PublicUser, error) {
	return s.users.ListWithPublicContent(ctx)
}
