package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-enquete/internal/logger"
)

const (
	localStorageTable = "local_storage"

	columnKey       = "item_key"
	columnValue     = "item_value"
	columnUpdatedAt = "updated_at"

	upsertItemSuffix = "ON CONFLICT(item_key) DO UPDATE SET item_value = excluded.item_value, updated_at = excluded.updated_at"
)

type localStorageRepository struct {
	*DB
	logger *logger.Logger

	now func() time.Time
}

// NewLocalStorageRepository returns the SQLite-backed [KeyValueStorage].
func NewLocalStorageRepository(db *DB, logger *logger.Logger) KeyValueStorage {
	return &localStorageRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *localStorageRepository) SetItem(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := sq.Insert(localStorageTable).
		Columns(columnKey, columnValue, columnUpdatedAt).
		Values(key, value, r.now().UTC()).
		Suffix(upsertItemSuffix).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "localStorageRepository.SetItem").
			Str("key", key).
			Msg("failed to upsert item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localStorageRepository) GetItem(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	query, args, err := sq.Select(columnValue).
		From(localStorageTable).
		Where(sq.Eq{columnKey: key}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrItemNotFound
	case err != nil:
		r.logger.Err(err).
			Str("func", "localStorageRepository.GetItem").
			Str("key", key).
			Msg("failed to read item")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (r *localStorageRepository) RemoveItem(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	query, args, err := sq.Delete(localStorageTable).
		Where(sq.Eq{columnKey: key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "localStorageRepository.RemoveItem").
			Str("key", key).
			Msg("failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
