package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"trafficsim/message"
	"trafficsim/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAppendsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.ndjson")

	sink, err := Initialize(utils.SinksConfig{FilePath: path})
	require.NoError(t, err)

	for _, line := range []string{"one", "two"} {
		batch := message.NewBatch(1)
		batch.Append(line, &message.HTTPMessage{})

		require.NoError(t, sink.Send(context.Background(), batch))
	}

	require.NoError(t, sink.Send(context.Background(), message.NewBatch(0)))
	require.NoError(t, sink.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "one\ntwo\n", string(content))
	assert.Equal(t, "file:"+path, sink.GetName())
	assert.Contains(t, sink.SummarizeState(), "2 batches (2 lines)")
}

func TestInitializeRequiresPath(t *testing.T) {
	_, err := Initialize(utils.SinksConfig{})
	assert.ErrorIs(t, err, ErrMissingPath)
}
