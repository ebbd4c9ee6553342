// Package http provides the HTTP transport used by the Stackdriver API
// client: authenticated request construction, retry plumbing, and mapping of
// failure statuses onto the error taxonomy.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/stackdriver/stackdriver-go/pkg/stackdriver"
)

const (
	headerAPIKey    = "x-stackdriver-apikey"
	headerVersion   = "x-stackdriver-version"
	headerRequestID = "x-request-id"

	defaultUserAgent = "stackdriver-go"
	defaultTimeout   = 30 * time.Second
)

// Request represents an HTTP request to the API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    interface{}
}

// Response represents an HTTP response from the API.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Logger interface for HTTP client logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client is the HTTP transport. It owns the API key credential and attaches
// it to every request; the credential is fixed at construction.
type Client struct {
	baseURL      string
	apiKey       string
	version      string
	userAgent    string
	debug        bool
	logger       Logger
	retryClient  *retryablehttp.Client
	interceptors *stackdriver.InterceptorChain
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithVersion sets the x-stackdriver-version header value.
func WithVersion(version string) Option {
	return func(c *Client) {
		c.version = version
	}
}

// WithRetryConfig configures retries for transient failures.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = retryWaitMin
		c.retryClient.RetryWaitMax = retryWaitMax
	}
}

// WithTimeout sets the transport-level request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying standard library client.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient = httpClient
	}
}

// WithInterceptors sets the interceptor chain executed around each request.
func WithInterceptors(chain *stackdriver.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport bound to a base URL and API key. The base
// URL is expected to already carry the version segment
// (e.g. "https://api.stackdriver.com/v0.2/").
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = defaultTimeout

	client := &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		userAgent:   defaultUserAgent,
		retryClient: retryClient,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the versioned base URL requests are issued against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}

// Do executes a single request/response exchange. Non-2xx statuses are
// translated into the error taxonomy; network failures surface as
// TransportError.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.endpointURL(req.Path, req.Query)

	var bodyBytes []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		bodyBytes = encoded
	}

	headers := c.buildHeaders(req)

	interceptReq := &stackdriver.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: headers,
		Body:    bodyBytes,
	}

	if c.interceptors != nil {
		err := c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
		if err != nil {
			return nil, err
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bodyBytes)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpReq.Header = interceptReq.Headers

	httpResp, err := c.retryClient.Do(httpReq)
	if err != nil {
		transportErr := &stackdriver.TransportError{Op: req.Method, URL: fullURL, Err: err}
		c.notifyResponseInterceptors(ctx, interceptReq, &stackdriver.Response{Error: transportErr})

		return nil, transportErr
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		transportErr := &stackdriver.TransportError{Op: req.Method, URL: fullURL, Err: err}
		c.notifyResponseInterceptors(ctx, interceptReq, &stackdriver.Response{Error: transportErr})

		return nil, transportErr
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP response", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"status": httpResp.StatusCode,
		})
	}

	if httpResp.StatusCode < nethttp.StatusOK || httpResp.StatusCode >= nethttp.StatusMultipleChoices {
		apiErr := stackdriver.ParseErrorResponse(httpResp.StatusCode, respBody)
		c.notifyResponseInterceptors(ctx, interceptReq, &stackdriver.Response{
			StatusCode: httpResp.StatusCode,
			Headers:    httpResp.Header,
			Body:       respBody,
			Error:      apiErr,
		})

		return nil, apiErr
	}

	c.notifyResponseInterceptors(ctx, interceptReq, &stackdriver.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	})

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}, nil
}

func (c *Client) notifyResponseInterceptors(ctx context.Context, req *stackdriver.Request, resp *stackdriver.Response) {
	if c.interceptors == nil {
		return
	}

	err := c.interceptors.ExecuteResponseInterceptors(ctx, req, resp)
	if err != nil && c.logger != nil {
		c.logger.Warn("response interceptor failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// endpointURL joins the base URL and endpoint path. The base always ends
// with a slash; a leading slash on the path is dropped so joins never double
// up.
func (c *Client) endpointURL(path string, query url.Values) string {
	path = strings.TrimPrefix(path, "/")

	full := c.baseURL + path
	if len(query) > 0 {
		full += "?" + query.Encode()
	}

	return full
}

func (c *Client) buildHeaders(req *Request) nethttp.Header {
	headers := nethttp.Header{}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	headers.Set(headerAPIKey, c.apiKey)

	if c.version != "" {
		headers.Set(headerVersion, c.version)
	}

	headers.Set(headerRequestID, uuid.NewString())
	headers.Set("User-Agent", c.userAgent)

	if req.Body != nil {
		headers.Set("Accept", "application/json, text/plain, */*")
		headers.Set("Content-Type", "application/json")
	} else {
		headers.Set("Accept", "application/json")
	}

	return headers
}
