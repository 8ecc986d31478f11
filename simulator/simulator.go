// Package simulator paces a workload, groups its messages into batches and delivers them to the sinks.
package simulator

import (
	"context"
	"errors"
	"math"
	"time"
	"trafficsim/message"
	"trafficsim/sinks"
	"trafficsim/utils"
	"trafficsim/workloads"

	"golang.org/x/time/rate"
)

const queuedBatches = 4

var ErrTooManyFailures = errors.New("too many consecutive batches could not be delivered")

// Stats summarizes a run
type Stats struct {
	Messages         int64
	Batches          int64
	DeliveredBatches int64
	FailedBatches    int64
	Duration         time.Duration
}

type Simulator struct {
	cfg      utils.SimulatorConfig
	workload workloads.Workload
	clock    workloads.Clock
	sinks    []sinks.Sink
	limiter  *rate.Limiter
	metrics  *Metrics
}

func New(cfg utils.SimulatorConfig, workload workloads.Workload, clock workloads.Clock, sinksLst []sinks.Sink, metrics *Metrics) (*Simulator, error) {
	if len(sinksLst) == 0 {
		return nil, sinks.ErrNoSink
	}

	if cfg.BatchSize <= 0 {
		cfg.BatchSize = utils.DefaultBatchSize
	}

	if cfg.MaxConsecutiveFailures <= 0 {
		cfg.MaxConsecutiveFailures = utils.DefaultMaxFailures
	}

	if cfg.Dialect == "" {
		cfg.Dialect = message.DialectResurface
	}

	if metrics == nil {
		metrics = NewMetrics()
	}

	metrics.batchSize.Set(float64(cfg.BatchSize))
	metrics.messageRate.Set(cfg.MessagesPerSecond)

	return &Simulator{
		cfg:      cfg,
		workload: workload,
		clock:    clock,
		sinks:    sinksLst,
		limiter:  newLimiter(cfg.MessagesPerSecond),
		metrics:  metrics,
	}, nil
}

// A rate <= 0 means no pacing at all
func newLimiter(messagesPerSecond float64) *rate.Limiter {
	if messagesPerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}

	burst := int(math.Max(1, messagesPerSecond/10)) //nolint:gomnd

	return rate.NewLimiter(rate.Limit(messagesPerSecond), burst)
}

// Run generates messages until the context is done, the message limit is reached,
// the workload fails or every sink keeps failing. The last partial batch is always delivered.
func (s *Simulator) Run(ctx context.Context) (Stats, error) {
	start := time.Now()

	genCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	batches := make(chan *message.Batch, queuedBatches)
	done := make(chan struct{})

	stats := Stats{}

	var deliverErr error

	// Batches already generated are delivered even when the run is interrupted
	go func() {
		defer close(done)

		deliverErr = s.deliver(context.WithoutCancel(ctx), batches, &stats, cancel)
	}()

	genErr := s.generate(genCtx, batches, &stats)

	close(batches)
	<-done

	stats.Duration = time.Since(start)

	utils.Logger.Info().Int64("messages", stats.Messages).Int64("batches", stats.Batches).Int64("failedBatches", stats.FailedBatches).Dur("duration", stats.Duration).Msg("Simulation finished.")

	if genErr != nil {
		return stats, genErr
	}

	return stats, deliverErr
}

// generate fills batches and queues them, only Messages of stats is written
func (s *Simulator) generate(ctx context.Context, batches chan<- *message.Batch, stats *Stats) error {
	batch := message.NewBatch(s.cfg.BatchSize)

	var genErr error

	for s.cfg.LimitMessages <= 0 || stats.Messages < int64(s.cfg.LimitMessages) {
		if waitErr := s.limiter.Wait(ctx); waitErr != nil {
			break
		}

		if addErr := s.workload.Add(batch, s.clock, s.cfg.Dialect); addErr != nil {
			genErr = addErr

			break
		}

		stats.Messages++
		s.metrics.messageGenerated(batch.Messages[batch.Len()-1].Attacker)

		if batch.Len() >= s.cfg.BatchSize {
			batches <- batch

			batch = message.NewBatch(s.cfg.BatchSize)
		}
	}

	if batch.Len() > 0 {
		batches <- batch
	}

	return genErr
}

// deliver sends every queued batch to the sinks. Once the failure limit is hit the generation is cancelled
// and the remaining batches are dropped.
func (s *Simulator) deliver(ctx context.Context, batches <-chan *message.Batch, stats *Stats, cancel context.CancelFunc) error {
	consecutiveFailures := 0

	var deliverErr error

	for batch := range batches {
		if deliverErr != nil {
			continue
		}

		stats.Batches++

		sendStart := time.Now()

		delivered := sinks.Broadcast(ctx, s.sinks, batch, func(sink sinks.Sink, err error) {
			s.metrics.batchSent(sink.GetName(), time.Since(sendStart), err)

			sendStart = time.Now()
		})

		if delivered > 0 {
			stats.DeliveredBatches++
			consecutiveFailures = 0

			continue
		}

		stats.FailedBatches++
		consecutiveFailures++

		if consecutiveFailures >= s.cfg.MaxConsecutiveFailures {
			utils.Logger.Error().Int("consecutiveFailures", consecutiveFailures).Msg("No sink accepts the batches anymore, stopping.")

			deliverErr = ErrTooManyFailures

			cancel()
		}
	}

	return deliverErr
}
