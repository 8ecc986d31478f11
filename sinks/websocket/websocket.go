package websocket

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
	"trafficsim/message"
	"trafficsim/utils"

	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

// Sink writes every line as a text frame, the connection is reopened after a failure
type Sink struct {
	url        string
	dialer     *websocket.Dialer
	mux        sync.Mutex
	conn       *websocket.Conn
	nbBatches  atomic.Int64
	nbLines    atomic.Int64
	nbFailures atomic.Int64
}

func Initialize(ctx context.Context, cfg utils.SinksConfig) (*Sink, error) {
	urlObj, urlErr := utils.ParseURLWithSchemes(cfg.WebsocketURL, "ws", "wss")

	if urlErr != nil {
		return nil, urlErr
	}

	sink := &Sink{
		url:    urlObj.String(),
		dialer: websocket.DefaultDialer,
	}

	// Fails early if the endpoint can not be reached
	if dialErr := sink.connect(ctx); dialErr != nil {
		return nil, dialErr
	}

	return sink, nil
}

func (s *Sink) GetName() string {
	return "websocket:" + s.url
}

func (s *Sink) SummarizeState() string {
	return fmt.Sprintf("%d batches (%d lines) streamed, %d failures", s.nbBatches.Load(), s.nbLines.Load(), s.nbFailures.Load())
}

// connect must be called with the mutex held or before the sink is shared
func (s *Sink) connect(ctx context.Context) error {
	conn, resp, dialErr := s.dialer.DialContext(ctx, s.url, nil)

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	if dialErr != nil {
		return dialErr
	}

	s.conn = conn

	return nil
}

func (s *Sink) Send(ctx context.Context, batch *message.Batch) error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.conn == nil {
		if dialErr := s.connect(ctx); dialErr != nil {
			s.nbFailures.Add(1)

			return dialErr
		}
	}

	for _, line := range batch.Lines {
		_ = s.conn.SetWriteDeadline(time.Now().Add(writeTimeout))

		if writeErr := s.conn.WriteMessage(websocket.TextMessage, []byte(line)); writeErr != nil {
			s.nbFailures.Add(1)

			s.conn.Close()
			s.conn = nil

			return writeErr
		}
	}

	s.nbBatches.Add(1)
	s.nbLines.Add(int64(batch.Len()))

	return nil
}

func (s *Sink) Close() error {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.conn == nil {
		return nil
	}

	_ = s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeTimeout))

	closeErr := s.conn.Close()
	s.conn = nil

	return closeErr
}
