package client_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackdriver/stackdriver-go/internal/client"
	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

// newTestClient starts an httptest server with the given handler and returns
// a client pointed at it.
func newTestClient(t *testing.T, handler http.HandlerFunc, config *stackdriver.Config) (*client.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	if config == nil {
		config = &stackdriver.Config{}
	}

	config.Endpoint = server.URL
	if config.APIKey == "" {
		config.APIKey = "test-api-key"
	}

	c, err := client.New(config)
	require.NoError(t, err)

	return c, server
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		require.ErrorIs(t, err, stackdriver.ErrConfigRequired)
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&stackdriver.Config{Endpoint: "https://api.example.com"})
		require.ErrorIs(t, err, stackdriver.ErrAPIKeyRequired)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		c, err := client.New(&stackdriver.Config{APIKey: "key"})
		require.NoError(t, err)
		assert.Equal(t, "https://api.stackdriver.com/v0.2/", c.Entrypoint())
	})

	t.Run("entrypoint composes endpoint and version", func(t *testing.T) {
		t.Parallel()

		c, err := client.New(&stackdriver.Config{
			APIKey:   "key",
			Endpoint: "https://custom.example.com/",
			Version:  "0.3",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://custom.example.com/v0.3/", c.Entrypoint())
	})
}

func TestClient_Collection(t *testing.T) {
	t.Parallel()

	c, err := client.New(&stackdriver.Config{APIKey: "key"})
	require.NoError(t, err)

	t.Run("known collection", func(t *testing.T) {
		t.Parallel()

		col, err := c.Collection("groups")
		require.NoError(t, err)
		assert.Equal(t, "groups", col.Name())
		assert.True(t, col.Capabilities().Has(stackdriver.VerbCreate))
	})

	t.Run("case insensitive", func(t *testing.T) {
		t.Parallel()

		col, err := c.Collection("Users")
		require.NoError(t, err)
		assert.Equal(t, "users", col.Name())
	})

	t.Run("unknown collection", func(t *testing.T) {
		t.Parallel()

		_, err := c.Collection("widgets")
		require.ErrorIs(t, err, stackdriver.ErrUnknownCollection)
	})
}

func TestClient_TypedClients(t *testing.T) {
	t.Parallel()

	c, err := client.New(&stackdriver.Config{APIKey: "key"})
	require.NoError(t, err)

	assert.NotNil(t, c.Users())
	assert.NotNil(t, c.Groups())
	assert.NotNil(t, c.Instances())
	assert.NotNil(t, c.AlertPolicies())
	assert.NotNil(t, c.Resolve())
}
