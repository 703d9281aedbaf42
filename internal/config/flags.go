package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// parseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a API base URL or host:port
//	-t request timeout (e.g. "10s")
//	-d SQLite DSN of the local storage
//	-login-path authentication route relative to the API address
//	-log-file client log file
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		apiAddress     string
		requestTimeout time.Duration
		databaseDSN    string
		loginPath      string
		logFile        string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("enquete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&apiAddress, "a", "", "API base URL or host:port")
	fs.DurationVar(&requestTimeout, "t", 0, "Request timeout (e.g., 10s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Local storage DSN")
	fs.StringVar(&loginPath, "login-path", "", "Authentication route")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LoginPath: loginPath,
			LogFile:   logFile,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
