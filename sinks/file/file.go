package file

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"trafficsim/message"
	"trafficsim/utils"

	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultMaxSizeMB = 100

var ErrMissingPath = errors.New("file sink requires a path")

// Sink appends the lines to a size-rotated file
type Sink struct {
	writer     *lumberjack.Logger
	nbBatches  atomic.Int64
	nbLines    atomic.Int64
	nbFailures atomic.Int64
}

func Initialize(cfg utils.SinksConfig) (*Sink, error) {
	if cfg.FilePath == "" {
		return nil, ErrMissingPath
	}

	maxSize := cfg.FileMaxSizeMB

	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}

	return &Sink{
		writer: &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    maxSize,
			MaxBackups: cfg.FileMaxBackups,
			Compress:   cfg.FileCompress,
		},
	}, nil
}

func (s *Sink) GetName() string {
	return "file:" + s.writer.Filename
}

func (s *Sink) SummarizeState() string {
	return fmt.Sprintf("%d batches (%d lines) written, %d failures", s.nbBatches.Load(), s.nbLines.Load(), s.nbFailures.Load())
}

func (s *Sink) Send(_ context.Context, batch *message.Batch) error {
	if batch.Len() == 0 {
		return nil
	}

	_, writeErr := s.writer.Write(batch.Payload())

	if writeErr != nil {
		s.nbFailures.Add(1)

		return writeErr
	}

	s.nbBatches.Add(1)
	s.nbLines.Add(int64(batch.Len()))

	return nil
}

func (s *Sink) Close() error {
	return s.writer.Close()
}
