package client

import (
	"context"

	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

// GroupsClient implements stackdriver.GroupsClient.
type GroupsClient struct {
	col *Collection
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(col *Collection) *GroupsClient {
	return &GroupsClient{col: col}
}

// List implements stackdriver.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context, params *stackdriver.QueryParams) ([]stackdriver.Record, error) {
	return c.col.List(ctx, params)
}

// Get implements stackdriver.GroupsClient.Get.
func (c *GroupsClient) Get(ctx context.Context, id string) (stackdriver.Record, error) {
	return c.col.Get(ctx, id, nil)
}

// Create implements stackdriver.GroupsClient.Create.
func (c *GroupsClient) Create(ctx context.Context, payload stackdriver.Record) (stackdriver.Record, error) {
	return c.col.Create(ctx, payload)
}

// Delete implements stackdriver.GroupsClient.Delete.
func (c *GroupsClient) Delete(ctx context.Context, record stackdriver.Record) (stackdriver.Record, error) {
	return c.col.Delete(ctx, record)
}
