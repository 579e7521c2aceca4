// Package http_request provides a requester that performs single HTTP calls
// over a shared http_client.Client.
package http_request

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/vk/modfactory/internal/config"
	"github.com/vk/modfactory/internal/ctxlog"
	"github.com/vk/modfactory/internal/registry"
	"github.com/vk/modfactory/modules/http_client"
	"github.com/zclconf/go-cty/cty"
)

// Class names registered by this package.
const (
	ClassName     = "HttpRequester"
	InterfaceName = "IRequester"
)

// Response is the outcome of a request.
type Response struct {
	StatusCode int
	Body       string
}

// Value returns the response as a cty object with status_code and body
// attributes.
func (r *Response) Value() cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"status_code": cty.NumberIntVal(int64(r.StatusCode)),
		"body":        cty.StringVal(r.Body),
	})
}

// Doer is the interface exposed under IRequester.
type Doer interface {
	Request(ctx context.Context, method, url string) (*Response, error)
}

// Requester sends requests through an HTTP client.
type Requester struct {
	client http_client.HTTPClient
}

var _ Doer = (*Requester)(nil)

// New returns a Requester using client.
func New(client http_client.HTTPClient) *Requester {
	return &Requester{client: client}
}

// Request performs a request and reads the whole body. An empty method
// means GET.
func (r *Requester) Request(ctx context.Context, method, url string) (*Response, error) {
	if r.client == nil {
		return nil, fmt.Errorf("http client dependency was not injected")
	}
	if method == "" {
		method = http.MethodGet
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Making HTTP request", "method", method, "url", url)

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("Received HTTP response", "status", resp.Status)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &Response{StatusCode: resp.StatusCode, Body: string(body)}, nil
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the HttpRequester class to the HTTP extension module. Each
// created Requester owns a fresh pooled client.
func (m *Module) Register(r *registry.Registry) {
	r.Module(config.HTTPExtension).RegisterClass(ClassName, InterfaceName, func() any {
		return New(http_client.New())
	})
}
