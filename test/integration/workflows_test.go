//go:build integration
// +build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stackdriver/stackdriver-go/pkg/sdclient"
	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Endpoint string
	APIKey   string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Endpoint: os.Getenv("STACKDRIVER_ENDPOINT"),
		APIKey:   os.Getenv("STACKDRIVER_API_KEY"),
		Verbose:  os.Getenv("STACKDRIVER_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if config.APIKey == "" {
		t.Skip("STACKDRIVER_API_KEY not set, skipping integration test")
	}
}

func (config *TestConfig) NewClient(t *testing.T) stackdriver.Client {
	t.Helper()

	c, err := sdclient.New(&stackdriver.Config{
		Endpoint: config.Endpoint,
		APIKey:   config.APIKey,
		Debug:    config.Verbose,
	})
	require.NoError(t, err)

	return c
}

// TestReadOnlyCollections walks the read-only collections end to end.
func TestReadOnlyCollections(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()

	t.Run("users", func(t *testing.T) {
		users, err := client.Users().List(ctx, nil)
		require.NoError(t, err)

		if len(users) > 0 {
			user, err := client.Users().Get(ctx, users[0].ID())
			require.NoError(t, err)
			assert.Equal(t, users[0].ID(), user.ID())
		}
	})

	t.Run("instances", func(t *testing.T) {
		_, err := client.Instances().List(ctx, nil)
		require.NoError(t, err)
	})

	t.Run("alert policies", func(t *testing.T) {
		_, err := client.AlertPolicies().List(ctx, nil)
		require.NoError(t, err)
	})
}

// TestGroupLifecycle creates, reads, and deletes a group against the live API.
func TestGroupLifecycle(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()

	name := fmt.Sprintf("integration-group-%d", time.Now().UnixNano())

	created, err := client.Groups().Create(ctx, stackdriver.Record{"name": name})
	require.NoError(t, err, "failed to create group %s", name)
	require.NotEmpty(t, created.ID())

	defer func() {
		if created.DeletedEpoch() == 0 {
			_, _ = client.Groups().Delete(ctx, created)
		}
	}()

	fetched, err := client.Groups().Get(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, name, fetched.StringField("name"))

	deleted, err := client.Groups().Delete(ctx, created)
	require.NoError(t, err)
	assert.NotZero(t, deleted.DeletedEpoch())

	_, err = client.Groups().Get(ctx, created.ID())
	require.Error(t, err)
	assert.True(t, stackdriver.IsNotFound(err))
}

// TestResolve resolves a name when one is provided via the environment.
func TestResolve(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	name := os.Getenv("STACKDRIVER_RESOLVE_NAME")
	if name == "" {
		t.Skip("STACKDRIVER_RESOLVE_NAME not set, skipping resolve test")
	}

	client := config.NewClient(t)

	records, err := client.Resolve().Resolve(context.Background(), name)
	require.NoError(t, err)

	for _, record := range records {
		assert.NotEmpty(t, record.ResourcePath())
	}
}
