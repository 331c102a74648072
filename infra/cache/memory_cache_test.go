package cache

import (
	"context"
	"testing"
	"time"

	pkgcache "github.com/amirasaad/aifinance/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type summary struct {
	UserID string
	Total  int
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	c := NewMemoryCache(10, time.Minute)
	t.Cleanup(c.Close)
	ctx := context.Background()

	var got summary
	ok, err := c.Get(ctx, "missing", &got)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", summary{UserID: "u1", Total: 3}, 0))
	ok, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, summary{UserID: "u1", Total: 3}, got)

	require.NoError(t, c.Delete(ctx, "k", "never-set"))
	ok, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache(10, time.Minute)
	t.Cleanup(c.Close)
	ctx := context.Background()

	now := time.Now()
	c.now = func() time.Time { return now }
	require.NoError(t, c.Set(ctx, "k", 1, 10*time.Second))

	var v int
	ok, _ := c.Get(ctx, "k", &v)
	assert.True(t, ok)

	now = now.Add(11 * time.Second)
	ok, _ = c.Get(ctx, "k", &v)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewMemoryCache(2, time.Minute)
	t.Cleanup(c.Close)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, 0))
	require.NoError(t, c.Set(ctx, "b", 2, 0))

	var v int
	ok, _ := c.Get(ctx, "a", &v)
	require.True(t, ok)

	require.NoError(t, c.Set(ctx, "c", 3, 0))
	assert.Equal(t, 2, c.Len())

	ok, _ = c.Get(ctx, "b", &v)
	assert.False(t, ok, "b was least recently used")
	ok, _ = c.Get(ctx, "a", &v)
	assert.True(t, ok)
	ok, _ = c.Get(ctx, "c", &v)
	assert.True(t, ok)
}

func TestGetOrLoad(t *testing.T) {
	c := NewMemoryCache(10, time.Minute)
	t.Cleanup(c.Close)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) ([]summary, error) {
		calls++
		return []summary{{UserID: "u1", Total: calls}}, nil
	}

	first, err := pkgcache.GetOrLoad(ctx, c, "list", 0, load)
	require.NoError(t, err)
	second, err := pkgcache.GetOrLoad(ctx, c, "list", 0, load)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)

	require.NoError(t, c.Delete(ctx, "list"))
	third, err := pkgcache.GetOrLoad(ctx, c, "list", 0, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, third[0].Total)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "fraudAlerts:u1", pkgcache.Key(pkgcache.FraudAlerts, "u1"))
	assert.Equal(t, "userStats:u1:summary:90", pkgcache.Key(pkgcache.UserStats, "u1", "summary", 90))
}
