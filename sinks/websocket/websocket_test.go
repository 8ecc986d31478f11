package websocket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"trafficsim/message"
	"trafficsim/utils"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{}

func newEchoServer(t *testing.T, frames chan<- string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}

			frames <- string(data)
		}
	}))

	t.Cleanup(server.Close)

	return server
}

func TestSendWritesOneFramePerLine(t *testing.T) {
	frames := make(chan string, 10)
	server := newEchoServer(t, frames)

	sink, err := Initialize(context.Background(), utils.SinksConfig{
		WebsocketURL: "ws" + strings.TrimPrefix(server.URL, "http"),
	})
	require.NoError(t, err)

	batch := message.NewBatch(2)
	batch.Append("first", &message.HTTPMessage{})
	batch.Append("second", &message.HTTPMessage{})

	require.NoError(t, sink.Send(context.Background(), batch))

	assert.Equal(t, "first", <-frames)
	assert.Equal(t, "second", <-frames)
	assert.Contains(t, sink.SummarizeState(), "1 batches (2 lines)")

	require.NoError(t, sink.Close())
	assert.NoError(t, sink.Close())
}

func TestInitializeFailsOnUnreachableEndpoint(t *testing.T) {
	_, err := Initialize(context.Background(), utils.SinksConfig{WebsocketURL: "ws://127.0.0.1:1/stream"})
	assert.Error(t, err)

	_, err = Initialize(context.Background(), utils.SinksConfig{WebsocketURL: "http://127.0.0.1/stream"})
	assert.ErrorIs(t, err, utils.ErrUnsupportedScheme)
}
