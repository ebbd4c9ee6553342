// Package sdclient provides the main entry point for creating Stackdriver
// API clients.
package sdclient

import (
	"fmt"
	"strings"

	"github.com/stackdriver/stackdriver-go/internal/client"
	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

// New creates a new Stackdriver API client.
//
// The endpoint is normalized ("https://" added when no scheme is present,
// trailing slash ensured) and the version segment is appended, so
// "api.stackdriver.com" becomes "https://api.stackdriver.com/v0.2/". An API
// key is required; there is no anonymous access.
func New(config *stackdriver.Config) (stackdriver.Client, error) {
	if config == nil {
		return nil, stackdriver.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, stackdriver.ErrAPIKeyRequired
	}

	if config.Endpoint != "" {
		endpoint := strings.TrimSpace(config.Endpoint)
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		if !strings.HasSuffix(endpoint, "/") {
			endpoint += "/"
		}

		config.Endpoint = endpoint
	}

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}
