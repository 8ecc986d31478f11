package simulator

import (
	"context"
	"errors"
	"net/http"
	"time"
	"trafficsim/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics are the simulator's prometheus collectors
type Metrics struct {
	registry      *prometheus.Registry
	messagesTotal *prometheus.CounterVec
	batchesTotal  *prometheus.CounterVec
	batchDuration *prometheus.HistogramVec
	batchSize     prometheus.Gauge
	messageRate   prometheus.Gauge
}

// NewMetrics creates the collectors in their own registry
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		messagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trafficsim_messages_total",
				Help: "Number of generated messages",
			},
			[]string{"class"},
		),
		batchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trafficsim_batches_total",
				Help: "Number of batches sent to a sink",
			},
			[]string{"sink", "status"},
		),
		batchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trafficsim_batch_send_duration_seconds",
				Help:    "Time spent sending a batch to a sink",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"sink"},
		),
		batchSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "trafficsim_batch_size",
				Help: "Configured number of messages per batch",
			},
		),
		messageRate: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "trafficsim_messages_per_second",
				Help: "Configured generation rate",
			},
		),
	}

	m.registry.MustRegister(m.messagesTotal, m.batchesTotal, m.batchDuration, m.batchSize, m.messageRate)

	return m
}

func (m *Metrics) messageGenerated(attacker int) {
	class := "normal"

	if attacker >= 0 {
		class = "attacker"
	}

	m.messagesTotal.WithLabelValues(class).Inc()
}

func (m *Metrics) batchSent(sink string, duration time.Duration, err error) {
	status := "success"

	if err != nil {
		status = "failure"
	}

	m.batchesTotal.WithLabelValues(sink, status).Inc()
	m.batchDuration.WithLabelValues(sink).Observe(duration.Seconds())
}

// Handler exposes the collectors
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes the metrics on the listen address until the context is done
func (m *Metrics) Serve(ctx context.Context, listen string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	srv := &http.Server{Addr: listen, Handler: mux, ReadHeaderTimeout: 5 * time.Second} //nolint:gomnd

	go func() {
		<-ctx.Done()

		_ = srv.Close()
	}()

	utils.Logger.Info().Str("listenAddress", listen).Msg("Metrics are served.")

	err := srv.ListenAndServe()

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
