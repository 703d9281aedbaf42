package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().SetBody(payload).Post("https://example.com/api/login")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client that encodes and decodes JSON with
// goccy/go-json and gives up on a request after timeout.
// A zero timeout leaves requests unbounded.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetTimeout(timeout)

	return &HTTPClient{Client: client}
}
