// Package search implements the keyword/field matching rules shared by
// every bookmark source: case-insensitive substring, optionally scoped to
// a single field, with tags matched element-wise.
package search

import "strings"

// searchable fields for the unscoped keyword match.
var keywordFields = []string{"url", "description", "category"}

// ValidField reports whether field names a searchable bookmark field.
// Empty means no field scoping.
func ValidField(field string) bool {
	switch field {
	case "", "url", "description", "category", "source", "tags":
		return true
	}
	return false
}

// Match reports whether entry satisfies the keyword/field filter.
// An empty keyword matches everything. With a field, only that field is
// tested; "tags" matches if any tag contains the keyword, other fields
// match on their stringified value. Without a field, the keyword is tested
// against url, description, category and every tag.
func Match(entry map[string]any, keyword, field string) bool {
	if keyword == "" {
		return true
	}
	kw := strings.ToLower(keyword)

	if field != "" {
		if field == "tags" {
			return anyTagContains(entry["tags"], kw)
		}
		v, ok := entry[field]
		if !ok {
			return false
		}
		return containsFold(v, kw)
	}

	for _, f := range keywordFields {
		if v, ok := entry[f]; ok && containsFold(v, kw) {
			return true
		}
	}
	return anyTagContains(entry["tags"], kw)
}

// Filter returns the entries matching keyword/field, preserving order.
func Filter(entries []map[string]any, keyword, field string) []map[string]any {
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		if Match(e, keyword, field) {
			out = append(out, e)
		}
	}
	return out
}

func containsFold(v any, loweredKeyword string) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(s), loweredKeyword)
}

func anyTagContains(tags any, loweredKeyword string) bool {
	switch list := tags.(type) {
	case []any:
		for _, t := range list {
			if containsFold(t, loweredKeyword) {
				return true
			}
		}
	case []string:
		for _, t := range list {
			if strings.Contains(strings.ToLower(t), loweredKeyword) {
				return true
			}
		}
	}
	return false
}
