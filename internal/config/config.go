// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults applied before any other source.
const (
	DefaultAPIAddress     = "http://localhost:5050/api"
	DefaultRequestTimeout = 10 * time.Second
	DefaultLoginPath      = "/login"
	DefaultDSN            = "enquete.db"
)

// StructuredConfig is the top-level configuration container for the Enquete
// client. It is populated by merging defaults, an optional JSON file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: API routes and log output.
	App App `envPrefix:"APP_"`

	// Storage holds the local key-value storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the settings of the outbound HTTP client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LoginPath is the authentication route, relative to the API address.
	// Env: APP_LOGIN_PATH
	LoginPath string `env:"LOGIN_PATH"`

	// LogFile is the file the client logs to. The terminal is owned by the
	// UI, so logs never go to stdout. Empty means "logs" next to the binary.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration of the local storage backends.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "enquete.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Adapter holds settings of the HTTP client used to reach the Enquete API.
type Adapter struct {
	// HTTPAddress is the API base URL (e.g. "http://localhost:5050/api").
	// A bare "host:port" is accepted and assumed to be plain http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientApp holds the application settings used by the client runtime.
type ClientApp struct {
	LoginPath string `validate:"required,startswith=/"`
	LogFile   string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	HTTPAddress    string        `validate:"required"`
	RequestTimeout time.Duration `validate:"gt=0"`
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	DSN string `validate:"required"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the validated client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetStructuredConfig loads and merges the configuration from all sources
// using the process arguments.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

// GetClientConfig builds and validates the client configuration from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate(validator.New(validator.WithRequiredStructEnabled()))
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LoginPath: DefaultLoginPath,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAPIAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LoginPath: cfg.App.LoginPath,
			LogFile:   cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}
}
