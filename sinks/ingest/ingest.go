// Package ingest posts batches as newline-delimited payloads to an ingestion endpoint.
package ingest

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"
	"trafficsim/message"
	"trafficsim/utils"

	"github.com/andybalholm/brotli"
)

const (
	CompressionNone   = "none"
	CompressionGzip   = "gzip"
	CompressionBrotli = "br"
	defaultTimeout    = 30
)

var (
	ErrUnknownCompression = errors.New("unknown compression")
	ErrUnexpectedStatus   = errors.New("unexpected ingestion response status")
)

// Sink posts every batch to the ingestion URL
type Sink struct {
	url         *url.URL
	client      *http.Client
	compression string
	headers     map[string]string
	nbBatches   atomic.Int64
	nbLines     atomic.Int64
	nbFailures  atomic.Int64
}

func Initialize(cfg utils.SinksConfig) (*Sink, error) {
	urlObj, urlErr := utils.ParseURLWithSchemes(cfg.IngestURL, "http", "https")

	if urlErr != nil {
		return nil, urlErr
	}

	compression := strings.ToLower(cfg.IngestCompression)

	switch compression {
	case "", "false":
		compression = CompressionNone
	case CompressionNone, CompressionGzip, CompressionBrotli:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCompression, cfg.IngestCompression)
	}

	timeout := cfg.IngestTimeout

	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Sink{
		url:         urlObj,
		client:      utils.GetHTTPClient(time.Duration(timeout) * time.Second),
		compression: compression,
		headers:     cfg.IngestHeaders,
	}, nil
}

func (s *Sink) GetName() string {
	return "ingest:" + utils.GetBaseURL(s.url)
}

func (s *Sink) SummarizeState() string {
	return fmt.Sprintf("%d batches (%d lines) posted, %d failures", s.nbBatches.Load(), s.nbLines.Load(), s.nbFailures.Load())
}

func (s *Sink) Send(ctx context.Context, batch *message.Batch) error {
	if batch.Len() == 0 {
		return nil
	}

	sendErr := s.post(ctx, batch)

	if sendErr != nil {
		s.nbFailures.Add(1)

		return sendErr
	}

	s.nbBatches.Add(1)
	s.nbLines.Add(int64(batch.Len()))

	return nil
}

func (s *Sink) post(ctx context.Context, batch *message.Batch) error {
	body, encodeErr := encode(batch.Payload(), s.compression)

	if encodeErr != nil {
		return encodeErr
	}

	headers := map[string]any{
		"Content-Type": utils.ContentTypeNDJSON,
	}

	if s.compression != CompressionNone {
		headers["Content-Encoding"] = s.compression
	}

	for name, value := range s.headers {
		headers[name] = value
	}

	resp, respErr := utils.SendRequest(ctx, s.client, utils.HTTPRequestData{
		URL:     s.url,
		Method:  http.MethodPost,
		Headers: headers,
		Body:    body,
	})

	if respErr != nil {
		return respErr
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	return nil
}

// encode compresses the payload with the given algorithm
func encode(payload []byte, compression string) (*bytes.Buffer, error) {
	body := &bytes.Buffer{}

	var writer io.WriteCloser

	switch compression {
	case CompressionGzip:
		writer = gzip.NewWriter(body)
	case CompressionBrotli:
		writer = brotli.NewWriterLevel(body, brotli.DefaultCompression)
	default:
		body.Write(payload)

		return body, nil
	}

	if _, err := writer.Write(payload); err != nil {
		return nil, err
	}

	if err := writer.Close(); err != nil {
		return nil, err
	}

	return body, nil
}

func (s *Sink) Close() error {
	s.client.CloseIdleConnections()

	return nil
}
