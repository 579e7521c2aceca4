package http_client

import (
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout is the request timeout of a freshly created Client.
const DefaultTimeout = 30 * time.Second

// HTTPClient is the interface exposed under IHttpClient.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
	Configure(timeout string) error
	Close() error
}

// Client is a pooled HTTP client meant to be shared by many requests.
type Client struct {
	http *http.Client
}

var _ HTTPClient = (*Client)(nil)

// New returns a Client with DefaultTimeout and a pooled transport.
func New() *Client {
	return &Client{
		http: &http.Client{
			Timeout: DefaultTimeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Configure sets the request timeout from a duration string such as "5s".
func (c *Client) Configure(timeout string) error {
	d, err := time.ParseDuration(timeout)
	if err != nil {
		return fmt.Errorf("invalid http client timeout %q: %w", timeout, err)
	}
	c.http.Timeout = d
	return nil
}

// Do sends req with the shared client.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.http.Do(req)
}

// HTTP returns the underlying *http.Client.
func (c *Client) HTTP() *http.Client {
	return c.http
}

// Close gracefully closes any idle connections.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
