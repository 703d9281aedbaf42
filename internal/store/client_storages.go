package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-enquete/internal/config"
	"github.com/MKhiriev/go-enquete/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed to the service layer.
type ClientStorages struct {
	// LocalStorage is the SQLite-backed key-value storage.
	LocalStorage KeyValueStorage

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the database file
//     if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires a [KeyValueStorage] to the connection.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		LocalStorage: NewLocalStorageRepository(db, logger),
		db:           db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
