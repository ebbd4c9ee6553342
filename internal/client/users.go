package client

import (
	"context"

	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

// UsersClient implements stackdriver.UsersClient.
type UsersClient struct {
	col *Collection
}

// NewUsersClient creates a new users client.
func NewUsersClient(col *Collection) *UsersClient {
	return &UsersClient{col: col}
}

// List implements stackdriver.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, params *stackdriver.QueryParams) ([]stackdriver.Record, error) {
	return c.col.List(ctx, params)
}

// Get implements stackdriver.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, id string) (stackdriver.Record, error) {
	return c.col.Get(ctx, id, nil)
}
