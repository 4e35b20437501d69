package dto

import "time"

// CreateBookmarkRequest is the JSON body for POST /bookmarks.
type CreateBookmarkRequest struct {
	URL         string   `json:"url" binding:"required"`
	Description string   `json:"description" binding:"required,max=1000"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category" binding:"max=120"`
	IsPublic    bool     `json:"is_public"`
}

// BookmarkResponse is the owner-facing bookmark representation.
type BookmarkResponse struct {
	ID          int64     `json:"id"`
	URL         string    `json:"url"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Category    string    `json:"category"`
	Source      *string   `json:"source"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListBookmarksResponse wraps a bookmark list.
type ListBookmarksResponse struct {
	Bookmarks []BookmarkResponse `json:"bookmarks"`
}
