package client

import (
	"context"

	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

// ResolveClient implements stackdriver.ResolveClient. Resolve is a
// query-style endpoint: the POST body is a query, not a new-entity payload,
// and the result is the set of matching resources.
type ResolveClient struct {
	col *Collection
}

// NewResolveClient creates a new resolve client.
func NewResolveClient(col *Collection) *ResolveClient {
	return &ResolveClient{col: col}
}

// Resolve implements stackdriver.ResolveClient.Resolve.
func (c *ResolveClient) Resolve(ctx context.Context, name string) ([]stackdriver.Record, error) {
	return c.col.Query(ctx, map[string]string{"name": name})
}

// Query implements stackdriver.ResolveClient.Query.
func (c *ResolveClient) Query(ctx context.Context, payload interface{}) ([]stackdriver.Record, error) {
	return c.col.Query(ctx, payload)
}
