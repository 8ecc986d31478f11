package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrUnsupportedScheme = errors.New("unsupported URL scheme")

// A base URL is the [SCHEME]://[DOMAIN]:[PORT]
func GetBaseURL(urlObj *url.URL) string {
	scheme := strings.ToLower(urlObj.Scheme)
	host := strings.ToLower(urlObj.Hostname())

	if scheme == "" {
		scheme = "https"
	}

	port := urlObj.Port()

	if port == "" {
		switch scheme {
		case "https", "wss":
			port = "443"
		default:
			port = "80"
		}
	}

	return fmt.Sprintf("%s://%s:%s", scheme, host, port)
}

// Parses an absolute URL and checks its scheme is one of the allowed ones
func ParseURLWithSchemes(rawURL string, schemes ...string) (*url.URL, error) {
	urlObj, err := url.Parse(rawURL)

	if err != nil {
		return nil, err
	}

	for _, scheme := range schemes {
		if strings.EqualFold(urlObj.Scheme, scheme) && urlObj.Host != "" {
			return urlObj, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, rawURL)
}

// Returns the host part of the URL, or an empty string if it can not be parsed
func HostOfURL(rawURL string) string {
	urlObj, err := url.Parse(rawURL)

	if err != nil {
		return ""
	}

	return strings.ToLower(urlObj.Hostname())
}
