package dto

// BookmarkView is the search result projection. It deliberately exposes
// only url, description, tags, category, source and, for public-scope
// results, the owner's username — internal ids and timestamps are dropped.
type BookmarkView struct {
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Category    string   `json:"category"`
	Source      *string  `json:"source"`
	Username    string   `json:"username,omitempty"`
}

// SearchResponse wraps search results.
type SearchResponse struct {
	Results []BookmarkView `json:"results"`
}
