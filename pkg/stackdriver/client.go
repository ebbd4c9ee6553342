package stackdriver

import (
	"context"
	"time"
)

// Client is the entry point to the Stackdriver API. A concrete
// implementation is constructed by the sdclient package.
type Client interface {
	// Typed accessors for the known collections.
	Users() UsersClient
	Groups() GroupsClient
	Instances() InstancesClient
	AlertPolicies() AlertPoliciesClient
	Resolve() ResolveClient

	// Collection resolves a collection by name against the registry. The
	// returned handle is stateless and may be re-derived at any time.
	Collection(name string) (CollectionClient, error)

	// Entrypoint returns the versioned base URL requests are issued against.
	Entrypoint() string
}

// CollectionClient is the generic verb dispatcher for a single resource
// collection. Verbs outside the collection's capability set fail with
// ErrVerbNotSupported before any request is issued.
type CollectionClient interface {
	Name() string
	Capabilities() Capabilities

	List(ctx context.Context, params *QueryParams) ([]Record, error)
	Get(ctx context.Context, id string, params *QueryParams) (Record, error)
	Create(ctx context.Context, payload Record) (Record, error)
	Delete(ctx context.Context, record Record) (Record, error)
	Query(ctx context.Context, payload interface{}) ([]Record, error)
}

// UsersClient provides access to the users collection.
type UsersClient interface {
	List(ctx context.Context, params *QueryParams) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
}

// GroupsClient provides access to the groups collection.
type GroupsClient interface {
	List(ctx context.Context, params *QueryParams) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
	Create(ctx context.Context, payload Record) (Record, error)
	Delete(ctx context.Context, record Record) (Record, error)
}

// InstancesClient provides access to the instances collection.
type InstancesClient interface {
	List(ctx context.Context, params *QueryParams) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
}

// AlertPoliciesClient provides access to the alert policies collection.
type AlertPoliciesClient interface {
	List(ctx context.Context, params *QueryParams) ([]Record, error)
	Get(ctx context.Context, id string) (Record, error)
}

// ResolveClient maps resource names to zero or more matching resources.
type ResolveClient interface {
	// Resolve queries by name and returns all matching resources.
	Resolve(ctx context.Context, name string) ([]Record, error)
	// Query issues an arbitrary resolve query payload.
	Query(ctx context.Context, payload interface{}) ([]Record, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a stackdriver.Client.
//
// Authentication is a single API key sent as the x-stackdriver-apikey header
// on every request. The key is fixed at construction and never mutated.
type Config struct {
	// Endpoint: base URL for the API (default "https://api.stackdriver.com/").
	// sdclient.New normalizes this value by adding "https://" if no scheme is
	// present and ensuring a trailing slash before appending the version
	// segment.
	Endpoint string
	// APIKey: required credential for every request.
	APIKey string
	// Version: API version segment appended to the endpoint (default "0.2").
	Version string

	// Optional configurations
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// HTTPTimeout: default timeout applied by the transport. Per-call
	// deadlines should be set through context.
	HTTPTimeout time.Duration
	// RetryMax: maximum retries for transient failures (>=500, 429 and
	// connection errors). Zero disables retries; the API contract does not
	// define retry semantics, so this is off unless asked for.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug enables verbose request/response logging when Logger is set.
	Debug bool
	// Logger: optional structured logger used by the transport.
	Logger Logger
	// Cache: optional read cache for GET/LIST responses. Nil disables caching.
	Cache *CacheConfig
	// Registry overrides the collection registry. Nil uses DefaultRegistry.
	Registry Registry
}
