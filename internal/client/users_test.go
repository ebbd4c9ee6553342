package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

func TestUsers_List(t *testing.T) {
	t.Parallel()

	t.Run("empty result set", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v0.2/users/", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data": [], "meta": {"count": 0}}`))
		}, nil)

		records, err := c.Users().List(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("query params forwarded", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "25", r.URL.Query().Get("count"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data": [{"id": 9, "email": "ops@example.com"}], "meta": {}}`))
		}, nil)

		params := stackdriver.NewQueryParams().WithPage(2).WithCount(25)

		records, err := c.Users().List(context.Background(), params)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "ops@example.com", records[0].StringField("email"))
	})
}

func TestUsers_Get(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0.2/users/9/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": {"id": 9, "email": "ops@example.com"}, "meta": {}}`))
	}, nil)

	record, err := c.Users().Get(context.Background(), "9")
	require.NoError(t, err)
	assert.Equal(t, "9", record.ID())
}
