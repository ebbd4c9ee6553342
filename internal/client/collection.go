package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stackdriver/stackdriver-go/internal/http"
	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

// normalizeCollectionName lowercases the collection name; endpoints are
// always lowercase on the wire.
func normalizeCollectionName(name string) string {
	return strings.ToLower(name)
}

// Collection is the generic verb dispatcher for one resource collection. It
// is stateless apart from its immutable binding; handles are cheap and may
// be re-derived at any time.
type Collection struct {
	name       string
	caps       stackdriver.Capabilities
	httpClient *http.Client
	cache      stackdriver.Cache
	cacheTTL   time.Duration
	validate   payloadValidator
}

func (c *Client) newCollection(name string) (*Collection, error) {
	caps, err := c.registry.Resolve(name)
	if err != nil {
		return nil, err
	}

	return &Collection{
		name:       normalizeCollectionName(name),
		caps:       caps,
		httpClient: c.httpClient,
		cache:      c.cache,
		cacheTTL:   c.cacheTTL,
		validate:   validatorFor(name),
	}, nil
}

// Name implements stackdriver.CollectionClient.Name.
func (c *Collection) Name() string {
	return c.name
}

// Capabilities implements stackdriver.CollectionClient.Capabilities.
func (c *Collection) Capabilities() stackdriver.Capabilities {
	return c.caps
}

// endpoint is the collection root path. Endpoints are always lowercase and
// always end with a slash.
func (c *Collection) endpoint() string {
	return c.name + "/"
}

func (c *Collection) idEndpoint(id string) string {
	return c.endpoint() + id + "/"
}

func (c *Collection) checkVerb(verb stackdriver.Verb) error {
	if !c.caps.Has(verb) {
		return fmt.Errorf("%w: %s cannot %s (supports %s)",
			stackdriver.ErrVerbNotSupported, c.name, verb, c.caps)
	}

	return nil
}

// List implements stackdriver.CollectionClient.List.
func (c *Collection) List(ctx context.Context, params *stackdriver.QueryParams) ([]stackdriver.Record, error) {
	err := c.checkVerb(stackdriver.VerbList)
	if err != nil {
		return nil, err
	}

	query := params.ToValues()

	cacheKey := c.endpoint()
	if len(query) > 0 {
		cacheKey += "?" + query.Encode()
	}

	if body, ok := c.cachedBody(ctx, cacheKey); ok {
		return stackdriver.UnwrapRecords(body)
	}

	resp, err := c.httpClient.Get(ctx, c.endpoint(), query)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.name, err)
	}

	c.storeBody(ctx, cacheKey, resp.Body)

	return stackdriver.UnwrapRecords(resp.Body)
}

// Get implements stackdriver.CollectionClient.Get.
func (c *Collection) Get(ctx context.Context, id string, params *stackdriver.QueryParams) (stackdriver.Record, error) {
	err := c.checkVerb(stackdriver.VerbGet)
	if err != nil {
		return nil, err
	}

	query := params.ToValues()
	path := c.idEndpoint(id)

	cacheKey := path
	if len(query) > 0 {
		cacheKey += "?" + query.Encode()
	}

	if body, ok := c.cachedBody(ctx, cacheKey); ok {
		return stackdriver.UnwrapRecord(body)
	}

	resp, err := c.httpClient.Get(ctx, path, query)
	if err != nil {
		return nil, fmt.Errorf("getting %s %s: %w", c.name, id, err)
	}

	c.storeBody(ctx, cacheKey, resp.Body)

	return stackdriver.UnwrapRecord(resp.Body)
}

// Create implements stackdriver.CollectionClient.Create. The payload is
// validated before any request is issued; on success a copy of the payload
// with the server-assigned fields merged in is returned, leaving the
// caller's payload untouched.
func (c *Collection) Create(ctx context.Context, payload stackdriver.Record) (stackdriver.Record, error) {
	err := c.checkVerb(stackdriver.VerbCreate)
	if err != nil {
		return nil, err
	}

	if c.validate != nil {
		err = c.validate(payload)
		if err != nil {
			return nil, err
		}
	}

	resp, err := c.httpClient.Post(ctx, c.endpoint(), payload)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", c.name, err)
	}

	created, err := stackdriver.UnwrapRecord(resp.Body)
	if err != nil {
		return nil, err
	}

	result := payload.Clone()
	for key, value := range created {
		result[key] = value
	}

	c.invalidate(ctx, result.ID())

	return result, nil
}

// Delete implements stackdriver.CollectionClient.Delete. Only records that
// already carry a server-assigned id can be deleted; the check happens
// before any request is issued. The deletion timestamp returned by the
// server is merged into the record.
func (c *Collection) Delete(ctx context.Context, record stackdriver.Record) (stackdriver.Record, error) {
	err := c.checkVerb(stackdriver.VerbDelete)
	if err != nil {
		return nil, err
	}

	id := record.ID()
	if id == "" {
		return nil, fmt.Errorf("deleting %s: %w", c.name, stackdriver.ErrMissingID)
	}

	resp, err := c.httpClient.Delete(ctx, c.idEndpoint(id))
	if err != nil {
		return nil, fmt.Errorf("deleting %s %s: %w", c.name, id, err)
	}

	deleted, err := stackdriver.UnwrapRecord(resp.Body)
	if err != nil {
		return nil, err
	}

	for key, value := range deleted {
		record[key] = value
	}

	c.invalidate(ctx, id)

	return record, nil
}

// Query implements stackdriver.CollectionClient.Query: a POST whose body is
// a query rather than a new-entity payload, returning zero or more matching
// resources.
func (c *Collection) Query(ctx context.Context, payload interface{}) ([]stackdriver.Record, error) {
	err := c.checkVerb(stackdriver.VerbQuery)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, c.endpoint(), payload)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", c.name, err)
	}

	return stackdriver.UnwrapRecords(resp.Body)
}

func (c *Collection) cachedBody(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}

	entry, err := c.cache.Get(ctx, key)
	if err != nil || entry == nil {
		return nil, false
	}

	return entry.Body, true
}

func (c *Collection) storeBody(ctx context.Context, key string, body []byte) {
	if c.cache == nil {
		return
	}

	_ = c.cache.Set(ctx, key, &stackdriver.CacheEntry{
		Body:     body,
		StoredAt: time.Now().UTC(),
	}, c.cacheTTL)
}

// invalidate drops the cached list root and record entry after a mutation.
func (c *Collection) invalidate(ctx context.Context, id string) {
	if c.cache == nil {
		return
	}

	_ = c.cache.Delete(ctx, c.endpoint())

	if id != "" {
		_ = c.cache.Delete(ctx, c.idEndpoint(id))
	}
}
