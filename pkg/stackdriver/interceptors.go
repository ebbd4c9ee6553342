package stackdriver

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Request represents an HTTP request that can be intercepted before it is
// sent.
type Request struct {
	Method  string
	Path    string
	Headers http.Header
	Body    []byte
}

// Response represents an HTTP response that can be intercepted after it is
// received.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor is called before a request is sent.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor is called after a response is received.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain manages a chain of interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates a new interceptor chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{
		requestInterceptors:  make([]RequestInterceptor, 0),
		responseInterceptors: make([]ResponseInterceptor, 0),
	}
}

// AddRequestInterceptor adds a request interceptor to the chain.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)
}

// AddResponseInterceptor adds a response interceptor to the chain.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)
}

// ExecuteRequestInterceptors runs all request interceptors.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	for _, interceptor := range c.requestInterceptors {
		err := interceptor(ctx, req)
		if err != nil {
			return fmt.Errorf("request interceptor failed: %w", err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs all response interceptors.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	for _, interceptor := range c.responseInterceptors {
		err := interceptor(ctx, req, resp)
		if err != nil {
			return fmt.Errorf("response interceptor failed: %w", err)
		}
	}

	return nil
}

// Common Interceptors

// LoggingInterceptor logs requests.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs responses.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
			"status": resp.StatusCode,
		}

		if resp.Error != nil {
			fields["error"] = resp.Error.Error()
			logger.Warn("API Response", fields)

			return nil
		}

		logger.Debug("API Response", fields)

		return nil
	}
}

// HeaderInterceptor sets a fixed header on every request.
func HeaderInterceptor(key, value string) RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = http.Header{}
		}

		req.Headers.Set(key, value)

		return nil
	}
}

// TimingInterceptor stamps the request with its start time, for use with
// TimingResponseInterceptor.
func TimingInterceptor() RequestInterceptor {
	return func(ctx context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = http.Header{}
		}

		req.Headers.Set("x-request-start", time.Now().UTC().Format(time.RFC3339Nano))

		return nil
	}
}

// TimingResponseInterceptor logs the elapsed wall time of each exchange when
// the request carried an x-request-start header.
func TimingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		started := req.Headers.Get("x-request-start")
		if started == "" {
			return nil
		}

		startTime, err := time.Parse(time.RFC3339Nano, started)
		if err != nil {
			return nil
		}

		logger.Debug("API Timing", map[string]interface{}{
			"method":  req.Method,
			"path":    req.Path,
			"elapsed": time.Since(startTime).String(),
		})

		return nil
	}
}
