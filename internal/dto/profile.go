package dto

// ProfileStats summarizes a public profile.
type ProfileStats struct {
	TotalRepositories int `json:"total_repositories"`
	TotalBookmarks    int `json:"total_bookmarks"`
}

// ProfileResponse is the anonymous view of a user's public content.
type ProfileResponse struct {
	User         UserResponse         `json:"user"`
	Repositories []RepositoryResponse `json:"repositories"`
	Bookmarks    []BookmarkResponse   `json:"bookmarks"`
	Stats        ProfileStats         `json:"stats"`
}

// PublicUserResponse is one row of the public user directory.
type PublicUserResponse struct {
	Username           string `json:"username"`
	PublicBookmarks    int    `json:"public_bookmarks"`
	PublicRepositories int    `json:"public_repositories"`
}

// ListUsersResponse wraps the public user directory.
type ListUsersResponse struct {
	Users []PublicUserResponse `json:"users"`
}
