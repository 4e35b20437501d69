package dto

import "time"

// CreateRepositoryRequest is the JSON body for POST /repositories.
type CreateRepositoryRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=120"`
	URL      string `json:"url" binding:"required"`
	IsPublic bool   `json:"is_public"`
}

// RepositoryResponse is the owner-facing repository representation.
type RepositoryResponse struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	URL        string     `json:"url"`
	IsPublic   bool       `json:"is_public"`
	LastSynced *time.Time `json:"last_synced"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ListRepositoriesResponse wraps a repository list.
type ListRepositoriesResponse struct {
	Repositories []RepositoryResponse `json:"repositories"`
}

// ImportResultResponse reports an import or resync outcome.
type ImportResultResponse struct {
	RepositoryID       int64  `json:"repository_id"`
	BookmarksImported  int    `json:"bookmarks_imported"`
	BookmarksSkipped   int    `json:"bookmarks_skipped"`
	TotalEntries       int    `json:"total_entries"`
	Message            string `json:"message"`
}
