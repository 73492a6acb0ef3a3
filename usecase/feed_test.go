package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AzielCF/az-photofeed/domains/feed"
	domainHistory "github.com/AzielCF/az-photofeed/domains/history"
	"github.com/AzielCF/az-photofeed/infrastructure/flickr"
	pkgError "github.com/AzielCF/az-photofeed/pkg/error"
)

// --- test doubles ---

type fakeCacheEntry struct {
	value []byte
	ttl   time.Duration
}

type fakeCache struct {
	entries map[string]fakeCacheEntry
	getErr  error
	setErr  error
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]fakeCacheEntry{}}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	return entry.value, true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.sets++
	c.entries[key] = fakeCacheEntry{value: value, ttl: ttl}
	return nil
}

type fakeProvider struct {
	searchResp   *flickr.SearchResponse
	searchErr    error
	infoResp     *flickr.PhotoInfoResponse
	infoErr      error
	commentsResp *flickr.CommentsResponse
	commentsErr  error

	searchCalls   int
	infoCalls     int
	commentsCalls int
}

func (p *fakeProvider) SearchPhotos(ctx context.Context, query feed.Query) (*flickr.SearchResponse, error) {
	p.searchCalls++
	return p.searchResp, p.searchErr
}

func (p *fakeProvider) PhotoInfo(ctx context.Context, photoID string) (*flickr.PhotoInfoResponse, error) {
	p.infoCalls++
	return p.infoResp, p.infoErr
}

func (p *fakeProvider) PhotoComments(ctx context.Context, photoID string) (*flickr.CommentsResponse, error) {
	p.commentsCalls++
	return p.commentsResp, p.commentsErr
}

type fakeHistory struct {
	records []*domainHistory.History
	err     error
}

func (h *fakeHistory) Record(ctx context.Context, entry *domainHistory.History) error {
	if h.err != nil {
		return h.err
	}
	h.records = append(h.records, entry)
	return nil
}

func flickrContent(s string) flickr.Content {
	return flickr.Content{Content: s}
}

func searchResponseFixture(n int) *flickr.SearchResponse {
	resp := &flickr.SearchResponse{
		Photos: &flickr.SearchPhotos{Page: 1, Pages: 1, PerPage: 50, Total: n},
	}
	for i := 0; i < n; i++ {
		resp.Photos.Photo = append(resp.Photos.Photo, flickr.SearchPhoto{
			ID:        string(rune('1' + i)),
			Title:     "photo",
			URLMedium: "https://img.test/p.jpg",
			OwnerName: "alice",
			Views:     "42",
			Tags:      "cats cute",
		})
	}
	return resp
}

func photoInfoFixture(id string) *flickr.PhotoInfoResponse {
	return &flickr.PhotoInfoResponse{
		Photo: &flickr.PhotoInfo{
			ID:          id,
			Title:       flickrContent("A title"),
			Description: flickrContent("A description"),
			Views:       "128",
			Owner:       flickr.PhotoOwner{Username: "bob", RealName: "Bob B"},
			Dates:       flickr.PhotoDates{Posted: "1712000000", Taken: "2024-04-01 10:00:00"},
			URLs:        flickr.PhotoURLs{URL: []flickr.Content{flickrContent("https://flickr.test/photo/" + id)}},
			Tags:        flickr.PhotoTags{Tag: []flickr.PhotoTag{{Raw: "cats"}}},
		},
	}
}

func commentsFixture() *flickr.CommentsResponse {
	return &flickr.CommentsResponse{
		Comments: &flickr.PhotoComments{
			Comment: []flickr.PhotoComment{
				{ID: "c1", AuthorName: "carol", DateCreate: "1712000100", Content: "nice shot"},
			},
		},
	}
}

func newService(cache feed.CacheStore, provider FlickrProvider, history domainHistory.IHistoryRepository) feed.IFeedUsecase {
	return NewFeedService(cache, provider, history, 600*time.Second, 600*time.Second)
}

// --- FetchFeed ---

func TestFetchFeed_ColdCacheWritesEntryAndAudits(t *testing.T) {
	cache := newFakeCache()
	provider := &fakeProvider{searchResp: searchResponseFixture(2)}
	hist := &fakeHistory{}
	svc := newService(cache, provider, hist)

	query := feed.Query{SearchText: "cats", Sort: "relevance", PerPage: 50, Page: 1}
	page, err := svc.FetchFeed(context.Background(), query, "U1")
	require.NoError(t, err)
	require.Len(t, page.Photos, 2)

	entry, ok := cache.entries["cats:tag-all:relevance:50:1"]
	require.True(t, ok, "expected cache entry under canonical key, got %v", cache.entries)
	assert.Equal(t, 600*time.Second, entry.ttl)

	var cached feed.FeedPage
	require.NoError(t, json.Unmarshal(entry.value, &cached))
	assert.Equal(t, page, cached)

	require.Len(t, hist.records, 1)
	assert.Equal(t, "U1", hist.records[0].UserID)
	assert.Equal(t, domainHistory.ActionSearch, hist.records[0].Action)
	assert.Equal(t, domainHistory.EntityFeed, hist.records[0].Entity)
}

func TestFetchFeed_WarmCacheSkipsUpstream(t *testing.T) {
	cache := newFakeCache()
	provider := &fakeProvider{searchResp: searchResponseFixture(1)}
	svc := newService(cache, provider, &fakeHistory{})

	query := feed.Query{SearchText: "cats"}
	first, err := svc.FetchFeed(context.Background(), query, "")
	require.NoError(t, err)

	second, err := svc.FetchFeed(context.Background(), query, "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.searchCalls, "warm cache must not hit upstream again")
}

func TestFetchFeed_DefaultQueryNotAudited(t *testing.T) {
	cache := newFakeCache()
	provider := &fakeProvider{searchResp: searchResponseFixture(1)}
	hist := &fakeHistory{}
	svc := newService(cache, provider, hist)

	// Actor present, but a pure default listing is not audited.
	_, err := svc.FetchFeed(context.Background(), feed.Query{}, "U1")
	require.NoError(t, err)
	assert.Empty(t, hist.records)
}

func TestFetchFeed_AnonymousNotAudited(t *testing.T) {
	cache := newFakeCache()
	provider := &fakeProvider{searchResp: searchResponseFixture(1)}
	hist := &fakeHistory{}
	svc := newService(cache, provider, hist)

	_, err := svc.FetchFeed(context.Background(), feed.Query{SearchText: "cats"}, "")
	require.NoError(t, err)
	assert.Empty(t, hist.records)
}

func TestFetchFeed_CacheFailuresAreMisses(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("connection refused")
	cache.setErr = errors.New("connection refused")
	provider := &fakeProvider{searchResp: searchResponseFixture(2)}
	svc := newService(cache, provider, &fakeHistory{})

	page, err := svc.FetchFeed(context.Background(), feed.Query{SearchText: "cats"}, "")
	require.NoError(t, err, "cache failures must never fail the lookup")
	assert.Len(t, page.Photos, 2)
	assert.Equal(t, 1, provider.searchCalls)
}

func TestFetchFeed_AuditFailureSwallowed(t *testing.T) {
	cache := newFakeCache()
	provider := &fakeProvider{searchResp: searchResponseFixture(1)}
	hist := &fakeHistory{err: errors.New("insert failed")}
	svc := newService(cache, provider, hist)

	_, err := svc.FetchFeed(context.Background(), feed.Query{SearchText: "cats"}, "U1")
	require.NoError(t, err, "audit failures must never fail the lookup")
}

func TestFetchFeed_UpstreamFailure(t *testing.T) {
	cache := newFakeCache()
	provider := &fakeProvider{searchErr: pkgError.UpstreamError("boom")}
	svc := newService(cache, provider, &fakeHistory{})

	_, err := svc.FetchFeed(context.Background(), feed.Query{SearchText: "cats"}, "")
	assert.ErrorIs(t, err, ErrFeedUnavailable)
	assert.Empty(t, cache.entries, "errors are never cached")
}

func TestFetchFeed_MalformedPayload(t *testing.T) {
	cache := newFakeCache()
	provider := &fakeProvider{searchResp: &flickr.SearchResponse{}} // missing photos block
	svc := newService(cache, provider, &fakeHistory{})

	_, err := svc.FetchFeed(context.Background(), feed.Query{SearchText: "cats"}, "")
	assert.ErrorIs(t, err, ErrFeedUnavailable)
	assert.Empty(t, cache.entries)
}

func TestFetchFeed_ZeroResultsIsValidPage(t *testing.T) {
	cache := newFakeCache()
	provider := &fakeProvider{searchResp: searchResponseFixture(0)}
	svc := newService(cache, provider, &fakeHistory{})

	page, err := svc.FetchFeed(context.Background(), feed.Query{SearchText: "nothing"}, "")
	require.NoError(t, err)
	require.NotNil(t, page.Photos)
	assert.Len(t, page.Photos, 0)
	assert.Equal(t, 0, page.Pagination.Total)
}

// --- FetchPhoto ---

func TestFetchPhoto_ColdCacheJoinsInfoAndComments(t *testing.T) {
	cache := newFakeCache()
	provider := &fakeProvider{infoResp: photoInfoFixture("123"), commentsResp: commentsFixture()}
	hist := &fakeHistory{}
	svc := newService(cache, provider, hist)

	detail, err := svc.FetchPhoto(context.Background(), "123", "U1")
	require.NoError(t, err)

	assert.Equal(t, "123", detail.ID)
	assert.Equal(t, "Bob B", detail.Author)
	require.Len(t, detail.Comments, 1)
	assert.Equal(t, "carol", detail.Comments[0].Author)

	entry, ok := cache.entries["photo:123"]
	require.True(t, ok)
	assert.Equal(t, 600*time.Second, entry.ttl)

	require.Len(t, hist.records, 1)
	assert.Equal(t, domainHistory.ActionView, hist.records[0].Action)
	assert.Equal(t, domainHistory.EntityPhoto, hist.records[0].Entity)
	require.NotNil(t, hist.records[0].EntityID)
	assert.Equal(t, "123", *hist.records[0].EntityID)
}

func TestFetchPhoto_ViewAlwaysAuditedWithActor(t *testing.T) {
	cache := newFakeCache()
	provider := &fakeProvider{infoResp: photoInfoFixture("123"), commentsResp: commentsFixture()}
	hist := &fakeHistory{}
	svc := newService(cache, provider, hist)

	_, err := svc.FetchPhoto(context.Background(), "123", "U1")
	require.NoError(t, err)
	assert.Len(t, hist.records, 1, "detail views are audited regardless of query content")
}

func TestFetchPhoto_CommentsFailureFailsLookup(t *testing.T) {
	cache := newFakeCache()
	provider := &fakeProvider{
		infoResp:    photoInfoFixture("123"),
		commentsErr: pkgError.UpstreamError("boom"),
	}
	svc := newService(cache, provider, &fakeHistory{})

	_, err := svc.FetchPhoto(context.Background(), "123", "")
	assert.ErrorIs(t, err, ErrPhotoUnavailable, "no partial photo-without-comments result")
	assert.Empty(t, cache.entries, "no cache write on failure")
}

func TestFetchPhoto_WarmCacheSkipsBothProviderCalls(t *testing.T) {
	cache := newFakeCache()
	provider := &fakeProvider{infoResp: photoInfoFixture("123"), commentsResp: commentsFixture()}
	svc := newService(cache, provider, &fakeHistory{})

	first, err := svc.FetchPhoto(context.Background(), "123", "")
	require.NoError(t, err)

	second, err := svc.FetchPhoto(context.Background(), "123", "")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.infoCalls)
	assert.Equal(t, 1, provider.commentsCalls)
}

func TestFetchPhoto_NotFoundSurfacesDistinctly(t *testing.T) {
	cache := newFakeCache()
	provider := &fakeProvider{
		infoErr:      pkgError.NotFoundError("photo not found"),
		commentsResp: commentsFixture(),
	}
	svc := newService(cache, provider, &fakeHistory{})

	_, err := svc.FetchPhoto(context.Background(), "missing", "")
	var notFound pkgError.NotFoundError
	require.ErrorAs(t, err, &notFound)
}
