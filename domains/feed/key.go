package feed

import (
	"fmt"
	"strings"
)

const (
	searchAllPlaceholder = "search-all"
	tagAllPlaceholder    = "tag-all"
	photoKeyPrefix       = "photo:"
)

// FeedKey derives the deterministic cache key for a feed query. Absent
// optional fields are replaced with fixed placeholders so that a missing and
// an empty field collide to the same key. Fields are joined with ':'; search
// text and tags are user input, so any ':' they carry is stripped to keep the
// tuple unambiguous.
func FeedKey(q Query) string {
	q = q.Normalized()

	search := sanitizeKeyField(q.SearchText)
	if search == "" {
		search = searchAllPlaceholder
	}
	tags := sanitizeKeyField(q.Tags)
	if tags == "" {
		tags = tagAllPlaceholder
	}

	return fmt.Sprintf("%s:%s:%s:%d:%d", search, tags, q.Sort, q.PerPage, q.Page)
}

// PhotoKey derives the cache key for a single-photo detail lookup.
func PhotoKey(photoID string) string {
	return photoKeyPrefix + photoID
}

func sanitizeKeyField(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), ":", "")
}
