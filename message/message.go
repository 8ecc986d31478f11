// Package message holds the synthetic HTTP message value, the batches they are collected into
// and the line-delimited dialects they are serialized to.
package message

// Header is a single name/value pair, headers keep their insertion order and may repeat
type Header struct {
	Name  string
	Value string
}

// HTTPMessage is one request/response exchange
type HTTPMessage struct {
	RequestAddress      string
	RequestMethod       string
	RequestURL          string
	RequestBody         string
	RequestContentType  string
	RequestUserAgent    string
	RequestHeaders      []Header
	ResponseCode        string
	ResponseBody        string
	ResponseContentType string
	ResponseHeaders     []Header
	ResponseTimeMillis  int64
	IntervalMillis      int64

	// Attacker is the index of the known attacker address the message comes from, or -1
	Attacker int
}

func (m *HTTPMessage) AddRequestHeader(name, value string) {
	m.RequestHeaders = append(m.RequestHeaders, Header{Name: name, Value: value})
}

func (m *HTTPMessage) AddResponseHeader(name, value string) {
	m.ResponseHeaders = append(m.ResponseHeaders, Header{Name: name, Value: value})
}

// Returns the value of the first request header with the given name
func (m *HTTPMessage) RequestHeader(name string) (string, bool) {
	return findHeader(m.RequestHeaders, name)
}

// Returns the value of the first response header with the given name
func (m *HTTPMessage) ResponseHeader(name string) (string, bool) {
	return findHeader(m.ResponseHeaders, name)
}

func findHeader(headers []Header, name string) (string, bool) {
	for _, header := range headers {
		if header.Name == name {
			return header.Value, true
		}
	}

	return "", false
}

// Batch is an ordered list of formatted lines along with the messages they were produced from
type Batch struct {
	Lines    []string
	Messages []*HTTPMessage
}

func NewBatch(capacity int) *Batch {
	return &Batch{
		Lines:    make([]string, 0, capacity),
		Messages: make([]*HTTPMessage, 0, capacity),
	}
}

// Appends a formatted line and its message
func (b *Batch) Append(line string, m *HTTPMessage) {
	b.Lines = append(b.Lines, line)
	b.Messages = append(b.Messages, m)
}

func (b *Batch) Len() int {
	return len(b.Lines)
}

// Returns the lines joined as newline-delimited payload (with a trailing newline)
func (b *Batch) Payload() []byte {
	size := 0

	for _, line := range b.Lines {
		size += len(line) + 1
	}

	payload := make([]byte, 0, size)

	for _, line := range b.Lines {
		payload = append(payload, line...)
		payload = append(payload, '\n')
	}

	return payload
}
