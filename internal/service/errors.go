package service

import (
	"errors"

	"github.com/MKhiriev/go-enquete/internal/app"
)

// User-facing errors. Their messages are shown in the form as they are.
var (
	ErrInvalidCredentials = errors.New(app.MsgInvalidCredentials)
	ErrUnexpected         = errors.New(app.MsgUnexpected)
)

// ErrNoSession is returned when no usable access token is stored.
var ErrNoSession = errors.New("no active session")
