package utils

import (
	"context"

	"github.com/google/uuid"
)

// RequestIDs issues the identifiers sent in the X-Request-ID header of
// outbound API calls.
type RequestIDs struct {
	newV7 func() (uuid.UUID, error)
}

func NewRequestIDs() *RequestIDs {
	return &RequestIDs{newV7: uuid.NewV7}
}

// New returns a time-ordered UUIDv7. A random UUIDv4 is used if the v7
// source fails.
func (r *RequestIDs) New() string {
	id, err := r.newV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Ensure returns the request ID already carried by ctx, or stores a new one.
// Every layer handling the same call logs and sends the same ID.
func (r *RequestIDs) Ensure(ctx context.Context) (context.Context, string) {
	if id, ok := GetRequestIDFromContext(ctx); ok {
		return ctx, id
	}

	id := r.New()
	return WithRequestID(ctx, id), id
}
