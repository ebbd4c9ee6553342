package client

import (
	"context"

	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

// AlertPoliciesClient implements stackdriver.AlertPoliciesClient.
type AlertPoliciesClient struct {
	col *Collection
}

// NewAlertPoliciesClient creates a new alert policies client.
func NewAlertPoliciesClient(col *Collection) *AlertPoliciesClient {
	return &AlertPoliciesClient{col: col}
}

// List implements stackdriver.AlertPoliciesClient.List.
func (c *AlertPoliciesClient) List(ctx context.Context, params *stackdriver.QueryParams) ([]stackdriver.Record, error) {
	return c.col.List(ctx, params)
}

// Get implements stackdriver.AlertPoliciesClient.Get.
func (c *AlertPoliciesClient) Get(ctx context.Context, id string) (stackdriver.Record, error) {
	return c.col.Get(ctx, id, nil)
}
