package sinks

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"trafficsim/message"
	"trafficsim/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	name    string
	sendErr error
	batches int
	closed  bool
}

func (s *recordingSink) GetName() string        { return s.name }
func (s *recordingSink) SummarizeState() string { return "" }
func (s *recordingSink) Close() error           { s.closed = true; return nil }

func (s *recordingSink) Send(_ context.Context, _ *message.Batch) error {
	s.batches++

	return s.sendErr
}

func TestBroadcastCountsDeliveries(t *testing.T) {
	ok := &recordingSink{name: "ok"}
	broken := &recordingSink{name: "broken", sendErr: errors.New("down")}

	results := map[string]error{}

	delivered := Broadcast(context.Background(), []Sink{ok, broken}, message.NewBatch(0), func(sink Sink, err error) {
		results[sink.GetName()] = err
	})

	assert.Equal(t, 1, delivered)
	assert.Equal(t, 1, ok.batches)
	assert.Equal(t, 1, broken.batches)
	assert.NoError(t, results["ok"])
	assert.Error(t, results["broken"])
}

func TestClearSinksClosesAll(t *testing.T) {
	first := &recordingSink{name: "first"}
	second := &recordingSink{name: "second"}

	ClearSinks([]Sink{first, second})

	assert.True(t, first.closed)
	assert.True(t, second.closed)
}

func TestLoadSinksSkipsBrokenOnes(t *testing.T) {
	allConfigs := &utils.AllConfigs{
		SinksConfig: utils.SinksConfig{
			FileEnabled:   true,
			FilePath:      filepath.Join(t.TempDir(), "out.ndjson"),
			IngestEnabled: true,
			IngestURL:     "not a url",
			InfluxEnabled: true,
		},
	}

	sinksLst := LoadSinks(context.Background(), allConfigs)
	defer ClearSinks(sinksLst)

	require.Len(t, sinksLst, 1)
	assert.Contains(t, sinksLst[0].GetName(), "file:")
}

func TestLoadSinksDryRunOnlyPrints(t *testing.T) {
	allConfigs := &utils.AllConfigs{
		SinksConfig:       utils.SinksConfig{FileEnabled: true, FilePath: filepath.Join(t.TempDir(), "out.ndjson")},
		CommandParameters: utils.CommandParameters{DryRun: true},
	}

	sinksLst := LoadSinks(context.Background(), allConfigs)

	require.Len(t, sinksLst, 1)
	assert.Equal(t, "stdout", sinksLst[0].GetName())
}
