package message

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"trafficsim/utils"

	jsoniter "github.com/json-iterator/go"
)

const (
	DialectResurface = "resurface"
	DialectGraylog   = "graylog"
	gelfVersion      = "1.1"
)

var ErrUnknownDialect = errors.New("unknown dialect")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type formatter func(m *HTTPMessage) (string, error)

var formatters = map[string]formatter{
	DialectResurface: formatResurface,
	DialectGraylog:   formatGraylog,
}

// Returns the names of the supported dialects
func Dialects() []string {
	return []string{DialectResurface, DialectGraylog}
}

// Format serializes the message into a single line of the given dialect
func Format(m *HTTPMessage, dialect string) (string, error) {
	format := utils.GetOrDefault[string, formatter](formatters, strings.ToLower(dialect), nil)

	if format == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}

	return format(m)
}

// formatResurface writes the message as an array of [key, value] string pairs
func formatResurface(m *HTTPMessage) (string, error) {
	details := [][2]string{
		{"request_method", m.RequestMethod},
		{"request_url", m.RequestURL},
		{"request_address", m.RequestAddress},
	}

	if m.RequestBody != "" {
		details = append(details, [2]string{"request_body", m.RequestBody})
	}

	if m.RequestContentType != "" {
		details = append(details, [2]string{"request_header:content-type", m.RequestContentType})
	}

	if m.RequestUserAgent != "" {
		details = append(details, [2]string{"request_header:user-agent", m.RequestUserAgent})
	}

	for _, header := range m.RequestHeaders {
		details = append(details, [2]string{"request_header:" + strings.ToLower(header.Name), header.Value})
	}

	details = append(details, [2]string{"response_code", m.ResponseCode})

	if m.ResponseBody != "" {
		details = append(details, [2]string{"response_body", m.ResponseBody})
	}

	if m.ResponseContentType != "" {
		details = append(details, [2]string{"response_header:content-type", m.ResponseContentType})
	}

	for _, header := range m.ResponseHeaders {
		details = append(details, [2]string{"response_header:" + strings.ToLower(header.Name), header.Value})
	}

	details = append(details,
		[2]string{"now", strconv.FormatInt(m.ResponseTimeMillis, 10)},
		[2]string{"interval", strconv.FormatInt(m.IntervalMillis, 10)},
	)

	line, err := json.MarshalToString(details)

	if err != nil {
		return "", fmt.Errorf("can not format message as %s: %w", DialectResurface, err)
	}

	return line, nil
}

// formatGraylog writes the message as a GELF object, message fields being additional "_" fields
func formatGraylog(m *HTTPMessage) (string, error) {
	gelf := map[string]any{
		"version":                gelfVersion,
		"host":                   m.RequestAddress,
		"short_message":          m.RequestMethod + " " + m.RequestURL,
		"timestamp":              float64(m.ResponseTimeMillis) / 1000, //nolint:gomnd
		"_request_method":        m.RequestMethod,
		"_request_url":           m.RequestURL,
		"_request_address":       m.RequestAddress,
		"_request_body":          m.RequestBody,
		"_request_content_type":  m.RequestContentType,
		"_request_user_agent":    m.RequestUserAgent,
		"_response_code":         m.ResponseCode,
		"_response_body":         m.ResponseBody,
		"_response_content_type": m.ResponseContentType,
		"_interval_millis":       m.IntervalMillis,
	}

	for _, header := range m.RequestHeaders {
		gelf["_request_header_"+gelfFieldName(header.Name)] = header.Value
	}

	for _, header := range m.ResponseHeaders {
		gelf["_response_header_"+gelfFieldName(header.Name)] = header.Value
	}

	line, err := json.MarshalToString(gelf)

	if err != nil {
		return "", fmt.Errorf("can not format message as %s: %w", DialectGraylog, err)
	}

	return line, nil
}

// GELF field names only allow letters, digits, underscores, dashes and dots
func gelfFieldName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.', r == '-':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, name)
}
