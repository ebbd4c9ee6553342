// Package constants centralizes defaults shared by the client packages and
// the CLI.
package constants

import "time"

// API defaults.
const (
	// DefaultEndpoint is the production API entrypoint.
	DefaultEndpoint = "https://api.stackdriver.com/"

	// DefaultVersion is the API version segment appended to the endpoint.
	DefaultVersion = "0.2"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are off unless configured; the API contract does not
// define retry semantics.
const (
	// DefaultRetryWaitMin is the minimum backoff between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// CLI output defaults.
const (
	// StandardPageSize is the default per-page count for list commands.
	StandardPageSize = 50
)
