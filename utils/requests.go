package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Sends a HTTP request with the provided request data
func SendRequest(ctx context.Context, client *http.Client, reqData HTTPRequestData) (HTTPResponseData, error) {
	body := reqData.Body

	if body == nil {
		body = &bytes.Buffer{}
	}

	req, reqErr := http.NewRequestWithContext(ctx, reqData.Method, reqData.URL.String(), body)

	if reqErr != nil {
		return HTTPResponseData{}, reqErr
	}

	// Sets the request headers
	for key, value := range reqData.Headers {
		req.Header.Set(key, fmt.Sprintf("%v", value))
	}

	resp, respErr := client.Do(req)

	if respErr != nil {
		return HTTPResponseData{}, respErr
	}

	defer resp.Body.Close()

	// Reads the response body
	respBody, respBodyErr := io.ReadAll(resp.Body)

	if respBodyErr != nil {
		return HTTPResponseData{}, respBodyErr
	}

	// Parses the response headers
	responseHeaders := make(map[string]any)

	for key, value := range resp.Header {
		if len(value) > 0 {
			responseHeaders[key] = value[0]
		}
	}

	return HTTPResponseData{
		StatusCode: resp.StatusCode,
		Headers:    responseHeaders,
		Body:       respBody,
	}, nil
}

// Returns a client that never follows redirections
func GetHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
		},
	}
}
