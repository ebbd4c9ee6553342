package stackdriver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

func TestRegistry_Resolve(t *testing.T) {
	t.Parallel()

	registry := stackdriver.DefaultRegistry()

	t.Run("known collection", func(t *testing.T) {
		t.Parallel()

		caps, err := registry.Resolve("groups")
		require.NoError(t, err)
		assert.True(t, caps.Has(stackdriver.VerbList))
		assert.True(t, caps.Has(stackdriver.VerbCreate))
		assert.True(t, caps.Has(stackdriver.VerbDelete))
		assert.False(t, caps.Has(stackdriver.VerbQuery))
	})

	t.Run("names are case-insensitive", func(t *testing.T) {
		t.Parallel()

		caps, err := registry.Resolve("Groups")
		require.NoError(t, err)
		assert.True(t, caps.Has(stackdriver.VerbGet))
	})

	t.Run("unknown collection", func(t *testing.T) {
		t.Parallel()

		_, err := registry.Resolve("widgets")
		require.ErrorIs(t, err, stackdriver.ErrUnknownCollection)
	})

	t.Run("read-only collections reject mutation verbs", func(t *testing.T) {
		t.Parallel()

		caps, err := registry.Resolve("users")
		require.NoError(t, err)
		assert.True(t, caps.Has(stackdriver.VerbList))
		assert.False(t, caps.Has(stackdriver.VerbCreate))
		assert.False(t, caps.Has(stackdriver.VerbDelete))
	})

	t.Run("resolve supports only query", func(t *testing.T) {
		t.Parallel()

		caps, err := registry.Resolve("resolve")
		require.NoError(t, err)
		assert.Equal(t, stackdriver.Capabilities{stackdriver.VerbQuery}, caps)
	})
}

func TestRegistry_Collections(t *testing.T) {
	t.Parallel()

	names := stackdriver.DefaultRegistry().Collections()
	assert.Equal(t, []string{"alert_policies", "groups", "instances", "resolve", "users"}, names)
}

func TestCapabilities_String(t *testing.T) {
	t.Parallel()

	caps := stackdriver.Capabilities{stackdriver.VerbList, stackdriver.VerbGet}
	assert.Equal(t, "LIST,GET", caps.String())
}
