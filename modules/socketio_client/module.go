// Package socketio_client provides a persistent socket.io client connection
// for the socket.io extension module.
package socketio_client

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/vk/modfactory/internal/config"
	"github.com/vk/modfactory/internal/ctxlog"
	"github.com/vk/modfactory/internal/registry"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// Class names registered by this package.
const (
	ClassName     = "SocketIOClient"
	InterfaceName = "ISocketClient"
)

// DefaultConnectTimeout bounds Connect when Options.Timeout is zero.
const DefaultConnectTimeout = 15 * time.Second

// ErrNotConnected is returned when the client has no live socket.
var ErrNotConnected = errors.New("socket.io client is not connected")

// Options configures a connection.
type Options struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// SocketClient is the interface exposed under ISocketClient.
type SocketClient interface {
	Connect(ctx context.Context, opts Options) error
	Socket() (*socket.Socket, error)
	Close() error
}

// Client owns at most one socket.io connection.
type Client struct {
	mu sync.Mutex
	io *socket.Socket
}

var _ SocketClient = (*Client)(nil)

// New returns an unconnected Client.
func New() *Client {
	return &Client{}
}

// Connect dials opts.URL over websocket and waits for the connect event.
func (c *Client) Connect(ctx context.Context, opts Options) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.io != nil {
		return fmt.Errorf("socket.io client already connected (sid %s)", c.io.Id())
	}

	logger := ctxlog.FromContext(ctx).With("class", ClassName, "url", opts.URL)

	parsedURL, err := url.Parse(opts.URL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return fmt.Errorf("invalid socket.io URL '%s'", opts.URL)
	}

	sockOpts := socket.DefaultOptions()
	sockOpts.SetPath(parsedURL.Path)
	if opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		sockOpts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	sockOpts.SetTransports(types.NewSet(transports.WebSocket))

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}

	connectChan := make(chan error, 1)
	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	io := socket.NewManager(baseURL, sockOpts).Socket(opts.Namespace, sockOpts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Connected", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		connectChan <- connectError(errs)
	})

	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return fmt.Errorf("socket.io connection failed: %w", err)
		}
		c.io = io
		return nil
	case <-ctx.Done():
		io.Disconnect()
		return fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		io.Disconnect()
		return fmt.Errorf("timed out after %v waiting for socket.io connection", timeout)
	}
}

// Socket returns the live socket.
func (c *Client) Socket() (*socket.Socket, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.io == nil || !c.io.Connected() {
		return nil, ErrNotConnected
	}
	return c.io, nil
}

// Close disconnects the socket. Closing an unconnected client is a no-op.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.io != nil {
		c.io.Disconnect()
		c.io = nil
	}
	return nil
}

func connectError(args []any) error {
	if len(args) == 0 {
		return errors.New("connect_error without details")
	}
	if err, ok := args[0].(error); ok {
		return err
	}
	return fmt.Errorf("connect_error: %v", args[0])
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the SocketIOClient class to the socket.io extension module.
func (m *Module) Register(r *registry.Registry) {
	r.Module(config.SocketIOExtension).RegisterClass(ClassName, InterfaceName, func() any {
		return New()
	})
}
