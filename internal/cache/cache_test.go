package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache map[string][]byte

func (m memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m[key] = value
	return nil
}

func (m memCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m, k)
	}
	return nil
}

func TestNoopCacheNeverHits(t *testing.T) {
	c := NewNoop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	val, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.NoError(t, c.Delete(ctx, "k", "other"))
}

func TestJSONHelpers(t *testing.T) {
	ctx := context.Background()
	c := memCache{}

	require.NoError(t, SetJSON(ctx, c, "logos:all", []int{3, 1}, time.Minute))

	var got []int
	ok, err := GetJSON(ctx, c, "logos:all", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{3, 1}, got)

	ok, err = GetJSON(ctx, c, "missing", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	c["broken"] = []byte("{not json")
	ok, err = GetJSON(ctx, c, "broken", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisKeysArePrefixed(t *testing.T) {
	c := NewRedis("localhost:6379", "", 0, "repaired:")
	defer c.Close()
	assert.Equal(t, "repaired:logos:all", c.key("logos:all"))
}

func TestNewRedisFromURLRejectsBadScheme(t *testing.T) {
	_, err := NewRedisFromURL("http://localhost:6379", "")
	assert.Error(t, err)

	c, err := NewRedisFromURL("redis://localhost:6379/2", "repaired:")
	require.NoError(t, err)
	assert.Equal(t, "repaired:x", c.key("x"))
	assert.NoError(t, c.Close())
}
