package repository

import (
	"context"
	"fmt"
	"time"

	valkeylib "github.com/valkey-io/valkey-go"

	"github.com/AzielCF/az-photofeed/infrastructure/valkey"
)

// ValkeyFeedCache implements feed.CacheStore on top of Valkey. Keys are
// namespaced under "feed"; expiration is handled natively by TTL, so there is
// no explicit delete path.
type ValkeyFeedCache struct {
	client *valkey.Client
	prefix string
}

// NewValkeyFeedCache creates a new ValkeyFeedCache instance.
func NewValkeyFeedCache(client *valkey.Client) *ValkeyFeedCache {
	return &ValkeyFeedCache{
		client: client,
		prefix: client.Key("feed") + ":",
	}
}

func (s *ValkeyFeedCache) fullKey(key string) string {
	return s.prefix + key
}

func (s *ValkeyFeedCache) inner() valkeylib.Client {
	return s.client.Inner()
}

// Get retrieves a cached entry. A missing key is (nil, false, nil).
func (s *ValkeyFeedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	cmd := s.inner().B().Get().Key(s.fullKey(key)).Build()

	data, err := s.inner().Do(ctx, cmd).AsBytes()
	if err != nil {
		if valkey.IsNil(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get feed cache entry: %w", err)
	}
	return data, true, nil
}

// Set stores a serialized entry with the given TTL.
func (s *ValkeyFeedCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	cmd := s.inner().B().Set().
		Key(s.fullKey(key)).
		Value(string(value)).
		Ex(ttl).
		Build()

	if err := s.inner().Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to save feed cache entry: %w", err)
	}
	return nil
}
