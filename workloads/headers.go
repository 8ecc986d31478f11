package workloads

import (
	"strconv"
	"time"
	"trafficsim/fake"
	"trafficsim/message"
)

const dateHeaderLayout = "2006/01/02 15:04:05"

// Adds exactly count request headers, each profile extending the smaller ones
func buildRequestHeaders(m *message.HTTPMessage, p fake.Provider, session Session, count int) {
	m.AddRequestHeader("Session-Index", strconv.Itoa(session.Index))
	m.AddRequestHeader("X-Request-ID", p.UUID())

	if count <= 2 { //nolint:gomnd
		return
	}

	m.AddRequestHeader("X-Forwarded-Scheme", "http")
	m.AddRequestHeader("X-Forwarded-Port", "80")
	m.AddRequestHeader("Accept", "*/*")
	m.AddRequestHeader("Content-Length", strconv.Itoa(len(m.RequestBody)))

	if count <= 6 { //nolint:gomnd
		return
	}

	m.AddRequestHeader("Accept-Encoding", "gzip")

	for i := 7; i < count; i++ {
		m.AddRequestHeader(p.Bothify("app??_##??"), p.Hex(8)) //nolint:gomnd
	}
}

// Adds exactly count response headers, each profile extending the smaller ones
func buildResponseHeaders(m *message.HTTPMessage, p fake.Provider, now int64, count int) {
	m.AddResponseHeader("Content-Length", strconv.Itoa(len(m.ResponseBody)))
	m.AddResponseHeader("X-Response-ID", p.UUID())

	if count <= 2 { //nolint:gomnd
		return
	}

	m.AddResponseHeader("Date", time.UnixMilli(now).UTC().Format(dateHeaderLayout))

	if count <= 3 { //nolint:gomnd
		return
	}

	m.AddResponseHeader("X-Content-Type-Options", "nosniff")
	m.AddResponseHeader("X-Frame-Options", "DENY")
}
