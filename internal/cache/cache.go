package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Cache stores opaque values by key. A miss is (nil, false, nil); errors are
// reserved for a backend that could not answer.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// GetJSON decodes the value at key into v. An undecodable entry counts as a
// miss so a stale format never wedges readers.
func GetJSON(ctx context.Context, c Cache, key string, v interface{}) (bool, error) {
	raw, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, nil
	}
	return true, nil
}

func SetJSON(ctx context.Context, c Cache, key string, v interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, raw, ttl)
}

// NoopCache never hits. It stands in when no redis is configured.
type NoopCache struct{}

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

func (n *NoopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (n *NoopCache) Delete(context.Context, ...string) error {
	return nil
}
