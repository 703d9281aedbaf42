package config

import "errors"

// Validation errors returned by [GetClientConfig] when a configuration group
// is incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid HTTP client settings
	// (for example, missing API address or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a login path that does not start with "/").
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
