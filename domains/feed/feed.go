package feed

import (
	"context"
	"time"
)

const (
	DefaultSort    = "relevance"
	DefaultPerPage = 50
	DefaultPage    = 1
)

// Query carries the normalized search parameters for a feed lookup.
type Query struct {
	SearchText string `json:"search" query:"search"`
	Tags       string `json:"tags" query:"tags"`
	Sort       string `json:"sort" query:"sort"`
	PerPage    int    `json:"per_page" query:"per_page"`
	Page       int    `json:"page" query:"page"`
}

// Normalized returns a copy of the query with defaults applied to every
// absent field. Equivalent queries (explicit default vs. omitted) collapse
// to the same value, so they derive the same cache key.
func (q Query) Normalized() Query {
	if q.Sort == "" {
		q.Sort = DefaultSort
	}
	if q.PerPage <= 0 {
		q.PerPage = DefaultPerPage
	}
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	return q
}

// PhotoSummary is one entry of a feed page.
type PhotoSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Media       string   `json:"media"`
	DateTaken   string   `json:"date_taken"`
	Description string   `json:"description"`
	Published   string   `json:"published"`
	Author      string   `json:"author"`
	Views       int      `json:"views"`
	Tags        []string `json:"tags"`
}

type Pagination struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	PerPage int `json:"perpage"`
	Total   int `json:"total"`
}

// FeedPage is the caller-facing result of a feed search.
type FeedPage struct {
	Pagination Pagination     `json:"pagination"`
	Photos     []PhotoSummary `json:"photos"`
}

type Comment struct {
	ID          string `json:"id"`
	Author      string `json:"author"`
	Content     string `json:"content"`
	DateCreated string `json:"date_created"`
}

// PhotoDetail is a photo's full metadata plus its comment thread.
type PhotoDetail struct {
	PhotoSummary
	Comments []Comment `json:"comments"`
}

// CacheStore is a key/value store with per-entry expiration, used as a
// read-through cache. Every call may fail due to connectivity loss; callers
// treat a failed Get as a miss and a failed Set as a no-op.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// IFeedUsecase is the aggregation core: derive key, check cache, fall back to
// the provider, normalize, write back, audit. actorID is the authenticated
// user's ID, or empty for anonymous lookups.
type IFeedUsecase interface {
	FetchFeed(ctx context.Context, query Query, actorID string) (FeedPage, error)
	FetchPhoto(ctx context.Context, photoID string, actorID string) (PhotoDetail, error)
}
