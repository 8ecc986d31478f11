package sinks

import (
	"context"
	"errors"
	"os"
	"trafficsim/message"
	"trafficsim/sinks/file"
	"trafficsim/sinks/influx"
	"trafficsim/sinks/ingest"
	"trafficsim/sinks/stdout"
	"trafficsim/sinks/websocket"
	"trafficsim/utils"
)

var ErrNoSink = errors.New("no sink is available")

// Sink receives the generated batches
type Sink interface {
	GetName() string
	SummarizeState() string
	Send(ctx context.Context, batch *message.Batch) error
	Close() error
}

// Initializes and returns all enabled sinks, the ones which fail to initialize are skipped
func LoadSinks(ctx context.Context, allConfigs *utils.AllConfigs) []Sink {
	utils.Logger.Info().Msg("Loading sinks.")

	sinksLst := []Sink{}

	cfg := allConfigs.SinksConfig

	// Dry run only prints the lines
	if allConfigs.CommandParameters.DryRun || cfg.StdoutEnabled {
		sinksLst = append(sinksLst, stdout.Initialize(os.Stdout))

		if allConfigs.CommandParameters.DryRun {
			return sinksLst
		}
	}

	if cfg.FileEnabled {
		sink, sinkErr := file.Initialize(cfg)

		sinksLst = appendSink(sinksLst, "file", sink, sinkErr)
	}

	if cfg.IngestEnabled {
		sink, sinkErr := ingest.Initialize(cfg)

		sinksLst = appendSink(sinksLst, "ingest", sink, sinkErr)
	}

	if cfg.WebsocketEnabled {
		sink, sinkErr := websocket.Initialize(ctx, cfg)

		sinksLst = appendSink(sinksLst, "websocket", sink, sinkErr)
	}

	if cfg.InfluxEnabled {
		sink, sinkErr := influx.Initialize(cfg)

		sinksLst = appendSink(sinksLst, "influx", sink, sinkErr)
	}

	for _, sink := range sinksLst {
		utils.Logger.Info().Str("sink", sink.GetName()).Msg("Sink is ready.")
	}

	return sinksLst
}

// appendSink keeps the sink if it has been initialized, logs the error otherwise
func appendSink[T Sink](sinksLst []Sink, kind string, sink T, sinkErr error) []Sink {
	if sinkErr != nil {
		utils.Logger.Error().Err(sinkErr).Str("sink", kind).Msg("Can not load the sink.")

		return sinksLst
	}

	return append(sinksLst, sink)
}

// Closes all sinks
func ClearSinks(sinksLst []Sink) {
	result := true

	for _, sink := range sinksLst {
		closeErr := sink.Close()

		if closeErr != nil {
			utils.Logger.Error().Err(closeErr).Str("sink", sink.GetName()).Msg("Can not close the sink.")

			result = false
		}
	}

	if result {
		utils.Logger.Info().Msg("All sinks have been closed.")
	} else {
		utils.Logger.Error().Msg("Some sinks have not been closed.")
	}
}

// Sends the batch to every sink and returns the number of sinks it has been delivered to
func Broadcast(ctx context.Context, sinksLst []Sink, batch *message.Batch, onResult func(sink Sink, err error)) int {
	delivered := 0

	for _, sink := range sinksLst {
		sendErr := sink.Send(ctx, batch)

		if onResult != nil {
			onResult(sink, sendErr)
		}

		if sendErr != nil {
			utils.Logger.Warn().Err(sendErr).Str("sink", sink.GetName()).Int("lines", batch.Len()).Msg("Can not deliver the batch.")

			continue
		}

		utils.Logger.Trace().Str("sink", sink.GetName()).Int("lines", batch.Len()).Msg("Batch delivered.")

		delivered++
	}

	return delivered
}
