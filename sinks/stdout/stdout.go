package stdout

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"trafficsim/message"
)

// Sink prints the lines, it is used for dry runs
type Sink struct {
	out     io.Writer
	nbLines atomic.Int64
}

func Initialize(out io.Writer) *Sink {
	return &Sink{out: out}
}

func (s *Sink) GetName() string {
	return "stdout"
}

func (s *Sink) SummarizeState() string {
	return fmt.Sprintf("%d lines printed", s.nbLines.Load())
}

func (s *Sink) Send(_ context.Context, batch *message.Batch) error {
	_, err := s.out.Write(batch.Payload())

	if err != nil {
		return err
	}

	s.nbLines.Add(int64(batch.Len()))

	return nil
}

func (s *Sink) Close() error {
	return nil
}
