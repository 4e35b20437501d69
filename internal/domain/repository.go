package domain

import "time"

// Repository is a named external JSON feed of bookmarks owned by a user.
// Its name is the join key recorded as Source on imported bookmarks.
type Repository struct {
	ID         int64
	UserID     int64
	Name       string
	URL        string
	IsPublic   bool
	LastSynced *time.Time

	CreatedAt time.Time
}
