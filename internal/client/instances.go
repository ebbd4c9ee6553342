package client

import (
	"context"

	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

// InstancesClient implements stackdriver.InstancesClient.
type InstancesClient struct {
	col *Collection
}

// NewInstancesClient creates a new instances client.
func NewInstancesClient(col *Collection) *InstancesClient {
	return &InstancesClient{col: col}
}

// List implements stackdriver.InstancesClient.List.
func (c *InstancesClient) List(ctx context.Context, params *stackdriver.QueryParams) ([]stackdriver.Record, error) {
	return c.col.List(ctx, params)
}

// Get implements stackdriver.InstancesClient.Get.
func (c *InstancesClient) Get(ctx context.Context, id string) (stackdriver.Record, error) {
	return c.col.Get(ctx, id, nil)
}
