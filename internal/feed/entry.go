package feed

import "errors"

// ErrMalformedFeed means the document is not a JSON array of objects.
var ErrMalformedFeed = errors.New("feed must be a JSON array of bookmark objects")

// DefaultCategory is assigned to imported entries that carry no category.
const DefaultCategory = "IMPORTED"

// Entry is one valid bookmark extracted from a feed document.
type Entry struct {
	URL         string
	Description string
	Tags        []string
	Category    string
}

// ParseFeed validates the fetched document shape and extracts its entries.
// Individual entries missing url or description are skipped, not fatal;
// the skipped count is returned so callers can report it.
func ParseFeed(doc any) (entries []Entry, skipped int, err error) {
	items, ok := doc.([]any)
	if !ok {
		return nil, 0, ErrMalformedFeed
	}

	entries = make([]Entry, 0, len(items))
	for _, item := range items {
		e, ok := extractEntry(item)
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	return entries, skipped, nil
}

// extractEntry maps one feed item to an Entry. url and description are
// required non-empty strings; tags tolerates any shape (non-arrays and
// non-string elements are dropped); category defaults to DefaultCategory.
func extractEntry(item any) (Entry, bool) {
	obj, ok := item.(map[string]any)
	if !ok {
		return Entry{}, false
	}

	url, _ := obj["url"].(string)
	description, _ := obj["description"].(string)
	if url == "" || description == "" {
		return Entry{}, false
	}

	e := Entry{
		URL:         url,
		Description: description,
		Tags:        []string{},
		Category:    DefaultCategory,
	}

	if raw, ok := obj["tags"].([]any); ok {
		for _, t := range raw {
			if s, ok := t.(string); ok {
				e.Tags = append(e.Tags, s)
			}
		}
	}
	if c, ok := obj["category"].(string); ok && c != "" {
		e.Category = c
	}
	return e, true
}
