package influx

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"trafficsim/message"
	"trafficsim/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() *message.HTTPMessage {
	return &message.HTTPMessage{
		RequestAddress:     "123.123.123.123",
		RequestMethod:      "POST",
		RequestURL:         "https://app.coinbroker.io/v1/pricing",
		RequestBody:        "{}",
		ResponseCode:       "200",
		ResponseBody:       "{\"a\":1}",
		ResponseTimeMillis: 1700000000000,
		IntervalMillis:     12,
		Attacker:           0,
	}
}

func TestNewPoint(t *testing.T) {
	pt, err := NewPoint(testMessage())
	require.NoError(t, err)

	assert.Equal(t, "http_message", pt.Name())
	assert.Equal(t, map[string]string{
		"method":   "POST",
		"code":     "200",
		"host":     "app.coinbroker.io",
		"attacker": "0",
	}, pt.Tags())

	fields, err := pt.Fields()
	require.NoError(t, err)
	assert.EqualValues(t, 12, fields["interval_millis"])
	assert.EqualValues(t, 7, fields["response_body_bytes"])
	assert.Equal(t, "123.123.123.123", fields["address"])
	assert.Equal(t, int64(1700000000000), pt.Time().UnixMilli())
}

func TestSendWritesLineProtocol(t *testing.T) {
	writes := make(chan string, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		assert.Equal(t, "/write", r.URL.Path)
		assert.Equal(t, "sim", r.URL.Query().Get("db"))

		writes <- string(body)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	sink, err := Initialize(utils.SinksConfig{InfluxAddr: server.URL, InfluxDatabase: "sim"})
	require.NoError(t, err)

	batch := message.NewBatch(2)
	batch.Append("a", testMessage())
	batch.Append("b", testMessage())

	require.NoError(t, sink.Send(context.Background(), batch))

	lines := strings.Split(strings.TrimSpace(<-writes), "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "http_message,"))
	assert.Contains(t, sink.SummarizeState(), "2 points written")
	assert.NoError(t, sink.Close())
}

func TestInitializeErrors(t *testing.T) {
	_, err := Initialize(utils.SinksConfig{InfluxAddr: "http://127.0.0.1:8086"})
	assert.ErrorIs(t, err, ErrMissingDatabase)

	_, err = Initialize(utils.SinksConfig{InfluxAddr: "udp://127.0.0.1:8089", InfluxDatabase: "sim"})
	assert.ErrorIs(t, err, utils.ErrUnsupportedScheme)
}
