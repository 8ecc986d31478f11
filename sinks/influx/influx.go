// Package influx records one point per generated message in an InfluxDB 1.x database.
package influx

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"
	"trafficsim/message"
	"trafficsim/utils"

	client "github.com/influxdata/influxdb1-client/v2"
)

const (
	measurement       = "http_message"
	defaultPrecision  = "ms"
	maxPointsPerWrite = 5000
)

var ErrMissingDatabase = errors.New("influx sink requires a database")

// Sink writes the messages as points
type Sink struct {
	addr       string
	client     client.Client
	database   string
	precision  string
	nbPoints   atomic.Int64
	nbFailures atomic.Int64
}

func Initialize(cfg utils.SinksConfig) (*Sink, error) {
	if cfg.InfluxDatabase == "" {
		return nil, ErrMissingDatabase
	}

	addrObj, addrErr := utils.ParseURLWithSchemes(cfg.InfluxAddr, "http", "https")

	if addrErr != nil {
		return nil, addrErr
	}

	c, clientErr := client.NewHTTPClient(client.HTTPConfig{
		Addr:     addrObj.String(),
		Username: cfg.InfluxUsername,
		Password: cfg.InfluxPassword,
	})

	if clientErr != nil {
		return nil, clientErr
	}

	precision := cfg.InfluxPrecision

	if precision == "" {
		precision = defaultPrecision
	}

	return &Sink{
		addr:      utils.GetBaseURL(addrObj),
		client:    c,
		database:  cfg.InfluxDatabase,
		precision: precision,
	}, nil
}

func (s *Sink) GetName() string {
	return "influx:" + s.addr + "/" + s.database
}

func (s *Sink) SummarizeState() string {
	return fmt.Sprintf("%d points written, %d failures", s.nbPoints.Load(), s.nbFailures.Load())
}

func (s *Sink) Send(_ context.Context, batch *message.Batch) error {
	for _, messages := range utils.SubdiviseSlice(batch.Messages, maxPointsPerWrite) {
		bp, bpErr := s.batchPoints(messages)

		if bpErr != nil {
			s.nbFailures.Add(1)

			return bpErr
		}

		if writeErr := s.client.Write(bp); writeErr != nil {
			s.nbFailures.Add(1)

			return writeErr
		}

		s.nbPoints.Add(int64(len(messages)))
	}

	return nil
}

func (s *Sink) batchPoints(messages []*message.HTTPMessage) (client.BatchPoints, error) {
	bp, bpErr := client.NewBatchPoints(client.BatchPointsConfig{
		Database:  s.database,
		Precision: s.precision,
	})

	if bpErr != nil {
		return nil, bpErr
	}

	for _, m := range messages {
		pt, ptErr := NewPoint(m)

		if ptErr != nil {
			return nil, ptErr
		}

		bp.AddPoint(pt)
	}

	return bp, nil
}

// NewPoint converts a message into a point, tagged by what dashboards group on
func NewPoint(m *message.HTTPMessage) (*client.Point, error) {
	tags := map[string]string{
		"method":   m.RequestMethod,
		"code":     m.ResponseCode,
		"host":     utils.HostOfURL(m.RequestURL),
		"attacker": strconv.Itoa(m.Attacker),
	}

	fields := map[string]interface{}{
		"interval_millis":     m.IntervalMillis,
		"request_body_bytes":  len(m.RequestBody),
		"response_body_bytes": len(m.ResponseBody),
		"request_headers":     len(m.RequestHeaders),
		"response_headers":    len(m.ResponseHeaders),
		"user_agent":          m.RequestUserAgent,
		"address":             m.RequestAddress,
	}

	return client.NewPoint(measurement, tags, fields, time.UnixMilli(m.ResponseTimeMillis))
}

func (s *Sink) Close() error {
	return s.client.Close()
}
