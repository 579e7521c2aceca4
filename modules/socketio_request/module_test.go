package socketio_request_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/modfactory/internal/config"
	"github.com/vk/modfactory/internal/registry"
	"github.com/vk/modfactory/modules/socketio_client"
	"github.com/vk/modfactory/modules/socketio_request"
)

func TestRequester_RequiresConnectedClient(t *testing.T) {
	t.Parallel()

	r := socketio_request.New()

	_, err := r.Do(context.Background(), nil, socketio_request.Request{EmitEvent: "ping", OnEvent: "pong"})
	require.ErrorContains(t, err, "not injected")

	_, err = r.Do(context.Background(), socketio_client.New(), socketio_request.Request{EmitEvent: "ping", OnEvent: "pong"})
	require.ErrorIs(t, err, socketio_client.ErrNotConnected)
}

func TestModule_Register(t *testing.T) {
	t.Parallel()

	reg := registry.New(&socketio_request.Module{}, &socketio_client.Module{})
	b := reg.Module(config.SocketIOExtension)

	_, ok := b.AttemptCreate(socketio_request.ClassName, socketio_request.InterfaceName).(socketio_request.EventRequester)
	require.True(t, ok)
	require.Len(t, b.Classes(), 2)
}
