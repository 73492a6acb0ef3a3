package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/AzielCF/az-photofeed/domains/feed"
	domainHistory "github.com/AzielCF/az-photofeed/domains/history"
	"github.com/AzielCF/az-photofeed/infrastructure/flickr"
	pkgError "github.com/AzielCF/az-photofeed/pkg/error"
)

// Generic failures surfaced to callers. Upstream detail is logged, never
// returned.
var (
	ErrFeedUnavailable  = pkgError.UpstreamError("photo feed is currently unavailable")
	ErrPhotoUnavailable = pkgError.UpstreamError("photo detail is currently unavailable")
)

// FlickrProvider is the upstream boundary consumed by the aggregator. The
// concrete client lives in infrastructure/flickr.
type FlickrProvider interface {
	SearchPhotos(ctx context.Context, query feed.Query) (*flickr.SearchResponse, error)
	PhotoInfo(ctx context.Context, photoID string) (*flickr.PhotoInfoResponse, error)
	PhotoComments(ctx context.Context, photoID string) (*flickr.CommentsResponse, error)
}

type feedService struct {
	cache    feed.CacheStore
	provider FlickrProvider
	history  domainHistory.IHistoryRepository
	feedTTL  time.Duration
	photoTTL time.Duration
}

// NewFeedService wires the read-through feed aggregator. Cache and history
// are best-effort collaborators: their failures are logged and swallowed,
// only upstream or normalization failures reach the caller.
func NewFeedService(
	cache feed.CacheStore,
	provider FlickrProvider,
	history domainHistory.IHistoryRepository,
	feedTTL, photoTTL time.Duration,
) feed.IFeedUsecase {
	return &feedService{
		cache:    cache,
		provider: provider,
		history:  history,
		feedTTL:  feedTTL,
		photoTTL: photoTTL,
	}
}

func (s *feedService) FetchFeed(ctx context.Context, query feed.Query, actorID string) (feed.FeedPage, error) {
	q := query.Normalized()
	key := feed.FeedKey(q)

	var page feed.FeedPage
	if s.cacheGet(ctx, key, &page) {
		return page, nil
	}

	raw, err := s.provider.SearchPhotos(ctx, q)
	if err != nil {
		logrus.WithError(err).Error("[FEED] upstream search failed")
		return feed.FeedPage{}, ErrFeedUnavailable
	}

	page, err = normalizeSearch(raw)
	if err != nil {
		logrus.WithError(err).Error("[FEED] failed to normalize search response")
		return feed.FeedPage{}, ErrFeedUnavailable
	}

	// The result is bound; everything below is best-effort post-processing
	// and must not affect the returned payload.
	s.cacheSet(ctx, key, page, s.feedTTL)

	if actorID != "" && (q.SearchText != "" || q.Tags != "") {
		s.record(ctx, actorID, domainHistory.ActionSearch, q, domainHistory.EntityFeed, nil)
	}

	return page, nil
}

func (s *feedService) FetchPhoto(ctx context.Context, photoID string, actorID string) (feed.PhotoDetail, error) {
	key := feed.PhotoKey(photoID)

	var detail feed.PhotoDetail
	if s.cacheGet(ctx, key, &detail) {
		return detail, nil
	}

	// Photo info and comments are independent requests; fetch them
	// concurrently and join. Both are required: a failure of either fails
	// the lookup, there is no photo-without-comments result.
	type commentsResult struct {
		resp *flickr.CommentsResponse
		err  error
	}
	commentsCh := make(chan commentsResult, 1)
	go func() {
		resp, err := s.provider.PhotoComments(ctx, photoID)
		commentsCh <- commentsResult{resp: resp, err: err}
	}()

	info, infoErr := s.provider.PhotoInfo(ctx, photoID)
	comments := <-commentsCh

	if infoErr != nil {
		var notFound pkgError.NotFoundError
		if errors.As(infoErr, &notFound) {
			return feed.PhotoDetail{}, notFound
		}
		logrus.WithError(infoErr).Errorf("[FEED] upstream photo info failed for %s", photoID)
		return feed.PhotoDetail{}, ErrPhotoUnavailable
	}
	if comments.err != nil {
		logrus.WithError(comments.err).Errorf("[FEED] upstream comments failed for %s", photoID)
		return feed.PhotoDetail{}, ErrPhotoUnavailable
	}

	detail, err := normalizePhoto(info, comments.resp)
	if err != nil {
		logrus.WithError(err).Errorf("[FEED] failed to normalize photo %s", photoID)
		return feed.PhotoDetail{}, ErrPhotoUnavailable
	}

	s.cacheSet(ctx, key, detail, s.photoTTL)

	if actorID != "" {
		s.record(ctx, actorID, domainHistory.ActionView, photoID, domainHistory.EntityPhoto, &photoID)
	}

	return detail, nil
}

// cacheGet treats every failure (connectivity, corrupt entry) as a miss.
func (s *feedService) cacheGet(ctx context.Context, key string, out any) bool {
	data, found, err := s.cache.Get(ctx, key)
	if err != nil {
		logrus.WithError(err).Warnf("[FEED] cache get failed for %s", key)
		return false
	}
	if !found {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		logrus.WithError(err).Warnf("[FEED] corrupt cache entry for %s", key)
		return false
	}
	logrus.Debugf("[FEED] cache hit: %s", key)
	return true
}

// cacheSet is best-effort: the cache is a performance optimization, never a
// correctness dependency.
func (s *feedService) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).Warnf("[FEED] failed to marshal cache entry for %s", key)
		return
	}
	if err := s.cache.Set(ctx, key, data, ttl); err != nil {
		logrus.WithError(err).Warnf("[FEED] cache set failed for %s", key)
	}
}

// record appends an audit entry; failures are logged and swallowed.
func (s *feedService) record(ctx context.Context, actorID string, action domainHistory.Action, value any, entity domainHistory.Entity, entityID *string) {
	serialized, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).Warn("[FEED] failed to serialize history value")
		return
	}

	entry := &domainHistory.History{
		UserID:    actorID,
		Action:    action,
		Value:     string(serialized),
		Entity:    entity,
		EntityID:  entityID,
		CreatedBy: actorID,
	}
	if err := s.history.Record(ctx, entry); err != nil {
		logrus.WithError(err).Warnf("[FEED] failed to record history for user %s", actorID)
	}
}
