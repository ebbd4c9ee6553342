package client_test

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

func TestCollection_VerbEnforcement(t *testing.T) {
	t.Parallel()

	var requests int32

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}, nil)

	ctx := context.Background()

	t.Run("read-only collection rejects create", func(t *testing.T) {
		col, err := c.Collection("users")
		require.NoError(t, err)

		_, err = col.Create(ctx, stackdriver.Record{"email": "ops@example.com"})
		require.ErrorIs(t, err, stackdriver.ErrVerbNotSupported)
		assert.Contains(t, err.Error(), "users cannot CREATE")
	})

	t.Run("read-only collection rejects delete", func(t *testing.T) {
		col, err := c.Collection("instances")
		require.NoError(t, err)

		_, err = col.Delete(ctx, stackdriver.Record{"id": "5"})
		require.ErrorIs(t, err, stackdriver.ErrVerbNotSupported)
	})

	t.Run("query-only collection rejects list", func(t *testing.T) {
		col, err := c.Collection("resolve")
		require.NoError(t, err)

		_, err = col.List(ctx, nil)
		require.ErrorIs(t, err, stackdriver.ErrVerbNotSupported)
	})

	// Capability checks happen locally; nothing reaches the server.
	assert.Equal(t, int32(0), atomic.LoadInt32(&requests))
}

func TestCollection_Caching(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	cacheConfig := func() *stackdriver.CacheConfig {
		return &stackdriver.CacheConfig{
			Type:   stackdriver.CacheTypeMemory,
			Memory: &stackdriver.MemoryCacheConfig{MaxSize: 10},
			TTL:    time.Minute,
		}
	}

	t.Run("repeated list served from cache", func(t *testing.T) {
		t.Parallel()

		var requests int32

		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requests, 1)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data": [{"id": 1, "name": "web"}], "meta": {}}`))
		}, &stackdriver.Config{Cache: cacheConfig()})

		first, err := c.Groups().List(ctx, nil)
		require.NoError(t, err)

		second, err := c.Groups().List(ctx, nil)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
	})

	t.Run("distinct query params are distinct cache entries", func(t *testing.T) {
		t.Parallel()

		var requests int32

		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requests, 1)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data": [], "meta": {}}`))
		}, &stackdriver.Config{Cache: cacheConfig()})

		_, err := c.Groups().List(ctx, stackdriver.NewQueryParams().WithPage(1))
		require.NoError(t, err)

		_, err = c.Groups().List(ctx, stackdriver.NewQueryParams().WithPage(2))
		require.NoError(t, err)

		assert.Equal(t, int32(2), atomic.LoadInt32(&requests))
	})

	t.Run("create invalidates the cached list", func(t *testing.T) {
		t.Parallel()

		var listRequests int32

		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")

			if r.Method == "POST" {
				_, _ = w.Write([]byte(`{"data": {"id": 2}, "meta": {}}`))

				return
			}

			atomic.AddInt32(&listRequests, 1)
			_, _ = w.Write([]byte(`{"data": [{"id": 1}], "meta": {}}`))
		}, &stackdriver.Config{Cache: cacheConfig()})

		_, err := c.Groups().List(ctx, nil)
		require.NoError(t, err)

		_, err = c.Groups().Create(ctx, stackdriver.Record{"name": "db"})
		require.NoError(t, err)

		_, err = c.Groups().List(ctx, nil)
		require.NoError(t, err)

		assert.Equal(t, int32(2), atomic.LoadInt32(&listRequests))
	})
}
