// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport used to reach the Enquete API.
//
// The primary abstraction is [HTTPPostClient]: it sends a JSON body and hands
// back the raw status code and body. It never interprets status codes, so the
// service layer decides what a 401 or a 500 means for the user.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// HTTPPostParams describes a single POST request.
type HTTPPostParams struct {
	// URL is either absolute or a path resolved against the configured API
	// address.
	URL string

	// Body is serialised as JSON. A nil Body sends no payload.
	Body any
}

// HTTPResponse is the raw outcome of a request that reached the server.
type HTTPResponse struct {
	StatusCode int
	Body       []byte
}

// HTTPPostClient sends JSON POST requests.
type HTTPPostClient interface {
	// Post sends params.Body to params.URL exactly once. A non-nil error means
	// no response was received (connection refused, timeout, cancelled ctx);
	// every status code, including 4xx and 5xx, is returned as a response.
	Post(ctx context.Context, params HTTPPostParams) (HTTPResponse, error)
}
