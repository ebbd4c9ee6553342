// Package client contains the concrete implementation of the
// stackdriver.Client interface: the generic collection dispatcher and the
// typed per-collection clients layered on top of it.
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/stackdriver/stackdriver-go/internal/constants"
	"github.com/stackdriver/stackdriver-go/internal/http"
	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

// Client implements the stackdriver.Client interface.
type Client struct {
	httpClient *http.Client
	registry   stackdriver.Registry
	entrypoint string
	logger     stackdriver.Logger
	cache      stackdriver.Cache
	cacheTTL   time.Duration

	// Typed resource clients
	users         stackdriver.UsersClient
	groups        stackdriver.GroupsClient
	instances     stackdriver.InstancesClient
	alertPolicies stackdriver.AlertPoliciesClient
	resolve       stackdriver.ResolveClient
}

// New creates a new Stackdriver API client. The config endpoint is expected
// to be normalized already (scheme present); sdclient.New takes care of that
// for callers.
func New(config *stackdriver.Config) (*Client, error) {
	if config == nil {
		return nil, stackdriver.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, stackdriver.ErrAPIKeyRequired
	}

	endpoint := config.Endpoint
	if endpoint == "" {
		endpoint = constants.DefaultEndpoint
	}

	version := config.Version
	if version == "" {
		version = constants.DefaultVersion
	}

	// The version template is part of every endpoint path.
	entrypoint := strings.TrimSuffix(endpoint, "/") + "/v" + version + "/"

	httpOpts := createHTTPClientOptions(config, version)
	httpClient := http.NewClient(entrypoint, config.APIKey, httpOpts...)

	client := &Client{
		httpClient: httpClient,
		entrypoint: entrypoint,
		logger:     config.Logger,
	}

	client.registry = config.Registry
	if client.registry == nil {
		client.registry = stackdriver.DefaultRegistry()
	}

	if config.Cache != nil {
		cache, err := stackdriver.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("building response cache: %w", err)
		}

		client.cache = cache
		client.cacheTTL = config.Cache.TTL
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *stackdriver.Config, version string) []http.Option {
	httpOpts := []http.Option{http.WithVersion(version)}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))

		chain := stackdriver.NewInterceptorChain()
		chain.AddRequestInterceptor(stackdriver.TimingInterceptor())
		chain.AddRequestInterceptor(stackdriver.LoggingInterceptor(config.Logger))
		chain.AddResponseInterceptor(stackdriver.LoggingResponseInterceptor(config.Logger))
		chain.AddResponseInterceptor(stackdriver.TimingResponseInterceptor(config.Logger))
		httpOpts = append(httpOpts, http.WithInterceptors(chain))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// Entrypoint implements stackdriver.Client.Entrypoint.
func (c *Client) Entrypoint() string {
	return c.entrypoint
}

// Collection implements stackdriver.Client.Collection.
func (c *Client) Collection(name string) (stackdriver.CollectionClient, error) {
	return c.newCollection(name)
}

// Resource client accessors

// Users implements stackdriver.Client.Users.
func (c *Client) Users() stackdriver.UsersClient {
	return c.users
}

// Groups implements stackdriver.Client.Groups.
func (c *Client) Groups() stackdriver.GroupsClient {
	return c.groups
}

// Instances implements stackdriver.Client.Instances.
func (c *Client) Instances() stackdriver.InstancesClient {
	return c.instances
}

// AlertPolicies implements stackdriver.Client.AlertPolicies.
func (c *Client) AlertPolicies() stackdriver.AlertPoliciesClient {
	return c.alertPolicies
}

// Resolve implements stackdriver.Client.Resolve.
func (c *Client) Resolve() stackdriver.ResolveClient {
	return c.resolve
}

// initializeResourceClients initializes the typed collection clients. Every
// collection named here is present in the default registry; a custom
// registry that drops one gets a handle that rejects all verbs instead.
func (c *Client) initializeResourceClients() {
	c.users = NewUsersClient(c.collectionOrEmpty("users"))
	c.groups = NewGroupsClient(c.collectionOrEmpty("groups"))
	c.instances = NewInstancesClient(c.collectionOrEmpty("instances"))
	c.alertPolicies = NewAlertPoliciesClient(c.collectionOrEmpty("alert_policies"))
	c.resolve = NewResolveClient(c.collectionOrEmpty("resolve"))
}

func (c *Client) collectionOrEmpty(name string) *Collection {
	col, err := c.newCollection(name)
	if err != nil {
		return &Collection{
			name:       name,
			caps:       stackdriver.Capabilities{},
			httpClient: c.httpClient,
		}
	}

	return col
}

// loggerAdapter adapts stackdriver.Logger to http.Logger.
type loggerAdapter struct {
	logger stackdriver.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
