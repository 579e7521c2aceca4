// Package socketio_request provides an emit-and-wait requester over a
// connected socket.io client.
package socketio_request

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/vk/modfactory/internal/config"
	"github.com/vk/modfactory/internal/ctxlog"
	"github.com/vk/modfactory/internal/registry"
	"github.com/vk/modfactory/modules/socketio_client"
	"github.com/zclconf/go-cty/cty"
	"github.com/zishang520/engine.io/v2/types"
)

// Class names registered by this package.
const (
	ClassName     = "SocketIORequester"
	InterfaceName = "IEventRequester"
)

// DefaultTimeout is used when Request.Timeout is empty.
const DefaultTimeout = 10 * time.Second

// Request describes one emit/response exchange. Timeout is a duration
// string such as "5s".
type Request struct {
	EmitEvent string
	EmitData  cty.Value
	OnEvent   string
	Timeout   string
}

// EventRequester is the interface exposed under IEventRequester.
type EventRequester interface {
	Do(ctx context.Context, client socketio_client.SocketClient, req Request) (cty.Value, error)
}

// Requester emits an event and waits for the matching response.
type Requester struct{}

var _ EventRequester = (*Requester)(nil)

// New returns a Requester.
func New() *Requester {
	return &Requester{}
}

type opResult struct {
	value cty.Value
	err   error
}

// Do emits req.EmitEvent and returns an object with a response_data
// attribute holding the first argument of req.OnEvent. On timeout or
// cancellation the pending OnEvent listener is removed. Listeners are matched
// by function, so overlapping Do calls on one client must not wait on the
// same OnEvent.
func (r *Requester) Do(ctx context.Context, client socketio_client.SocketClient, req Request) (cty.Value, error) {
	if client == nil {
		return cty.NilVal, fmt.Errorf("socket.io client dependency was not injected")
	}
	io, err := client.Socket()
	if err != nil {
		return cty.NilVal, err
	}

	logger := ctxlog.FromContext(ctx).With("class", ClassName, "sid", io.Id())
	logger.Debug("Executing request", "emitEvent", req.EmitEvent, "onEvent", req.OnEvent)

	timeout := DefaultTimeout
	if req.Timeout != "" {
		timeout, err = time.ParseDuration(req.Timeout)
		if err != nil {
			return cty.NilVal, fmt.Errorf("failed to parse timeout: %w", err)
		}
	}

	data, err := ctyValueToInterface(req.EmitData)
	if err != nil {
		return cty.NilVal, fmt.Errorf("failed to convert emit_data to interface: %w", err)
	}

	done := make(chan opResult, 1)
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	event := types.EventName(req.OnEvent)
	listener := types.Listener(func(args ...any) {
		done <- responseResult(args)
	})
	io.Once(event, listener)

	if logger.Enabled(ctx, slog.LevelDebug) {
		jsonData, _ := json.Marshal(data)
		logger.Debug("Emitting event", "event", req.EmitEvent, "data", string(jsonData))
	}
	io.Emit(req.EmitEvent, data)

	select {
	case <-opCtx.Done():
		io.RemoveListener(event, listener)
		if err := ctx.Err(); err != nil {
			return cty.NilVal, fmt.Errorf("request cancelled while waiting for event '%s': %w", req.OnEvent, err)
		}
		return cty.NilVal, fmt.Errorf("timed out after %v waiting for event '%s': %w", timeout, req.OnEvent, opCtx.Err())
	case res := <-done:
		if res.err != nil {
			return cty.NilVal, res.err
		}
		logger.Debug("Received response event", "event", req.OnEvent)
		return res.value, nil
	}
}

func responseResult(args []any) opResult {
	response := cty.NullVal(cty.DynamicPseudoType)
	if len(args) > 0 {
		v, err := interfaceToCtyValue(args[0])
		if err != nil {
			return opResult{err: fmt.Errorf("failed to convert received data: %w", err)}
		}
		response = v
	}
	return opResult{value: cty.ObjectVal(map[string]cty.Value{"response_data": response})}
}

// Module implements the registry.Module interface for this package.
type Module struct{}

// Register adds the SocketIORequester class to the socket.io extension module.
func (m *Module) Register(r *registry.Registry) {
	r.Module(config.SocketIOExtension).RegisterClass(ClassName, InterfaceName, func() any {
		return New()
	})
}
