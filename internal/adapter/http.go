package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-enquete/internal/config"
	"github.com/MKhiriev/go-enquete/internal/logger"
	"github.com/MKhiriev/go-enquete/internal/utils"
)

// RequestIDHeader carries the identifier of every outbound request.
const RequestIDHeader = "X-Request-ID"

type restyPostClient struct {
	client *utils.HTTPClient
	ids    *utils.RequestIDs

	logger *logger.Logger
}

// NewHTTPPostClient constructs the resty implementation of [HTTPPostClient].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPPostClient(adapterCfg config.ClientAdapter, logger *logger.Logger) (HTTPPostClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &restyPostClient{
		client: client,
		ids:    utils.NewRequestIDs(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Post implements [HTTPPostClient]. The request ID is taken from ctx when the
// caller set one, otherwise a new UUIDv7 is generated.
func (c *restyPostClient) Post(ctx context.Context, params HTTPPostParams) (HTTPResponse, error) {
	ctx, requestID := c.ids.Ensure(ctx)

	req := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader(RequestIDHeader, requestID)
	if params.Body != nil {
		req.SetBody(params.Body)
	}

	resp, err := req.Post(params.URL)
	if err != nil {
		c.logger.Err(err).
			Str("request_id", requestID).
			Str("url", params.URL).
			Msg("post request failed")
		return HTTPResponse{}, fmt.Errorf("post %s: %w", params.URL, err)
	}

	c.logger.Debug().
		Str("request_id", requestID).
		Str("url", params.URL).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("post request finished")

	return HTTPResponse{StatusCode: resp.StatusCode(), Body: resp.Body()}, nil
}
