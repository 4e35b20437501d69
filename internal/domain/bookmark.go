package domain

import "time"

// Bookmark is the domain entity for a saved URL.
// Source is the name of the repository the bookmark was imported from;
// nil means it was added manually by the owner.
type Bookmark struct {
	ID          int64
	UserID      int64
	URL         string
	Description string
	Tags        []string
	Category    string
	Source      *string
	IsPublic    bool

	CreatedAt time.Time
}

// PublicBookmark is a bookmark paired with its owner's username,
// used for anonymous (public-scope) search results.
type PublicBookmark struct {
	Bookmark
	Username string
}
