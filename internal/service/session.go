package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-enquete/internal/logger"
	"github.com/MKhiriev/go-enquete/internal/store"
	"github.com/MKhiriev/go-enquete/internal/utils"
	"github.com/MKhiriev/go-enquete/models"
)

// AccountNameKey is the storage key of the display name of the current
// account.
const AccountNameKey = "accountName"

type sessionService struct {
	storage store.KeyValueStorage
	now     func() time.Time

	logger *logger.Logger
}

func NewSessionService(storage store.KeyValueStorage, logger *logger.Logger) Session {
	return &sessionService{
		storage: storage,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *sessionService) SetCurrentAccount(ctx context.Context, account models.AccountModel) error {
	if strings.TrimSpace(account.AccessToken) == "" {
		return fmt.Errorf("%w: empty access token", ErrUnexpected)
	}

	if err := s.storage.SetItem(ctx, store.AccessTokenKey, account.AccessToken); err != nil {
		s.logger.Err(err).Str("func", "sessionService.SetCurrentAccount").Msg("failed to store access token")
		return fmt.Errorf("%w: %w", ErrUnexpected, err)
	}

	var err error
	if account.Name != "" {
		err = s.storage.SetItem(ctx, AccountNameKey, account.Name)
	} else {
		err = s.storage.RemoveItem(ctx, AccountNameKey)
	}
	if err != nil {
		// the name only feeds the greeting
		s.logger.Warn().Err(err).Str("func", "sessionService.SetCurrentAccount").Msg("failed to store account name")
	}

	return nil
}

func (s *sessionService) CurrentAccessToken(ctx context.Context) (models.AccessToken, error) {
	raw, err := s.storage.GetItem(ctx, store.AccessTokenKey)
	if errors.Is(err, store.ErrItemNotFound) {
		return models.AccessToken{}, ErrNoSession
	}
	if err != nil {
		return models.AccessToken{}, fmt.Errorf("read access token: %w", err)
	}

	token := utils.ParseAccessToken(raw)
	if token.IsExpired(s.now()) {
		s.logger.Info().Str("func", "sessionService.CurrentAccessToken").Msg("stored access token is expired")
		return models.AccessToken{}, ErrNoSession
	}

	return token, nil
}

func (s *sessionService) CurrentAccount(ctx context.Context) (models.AccountModel, error) {
	token, err := s.CurrentAccessToken(ctx)
	if err != nil {
		return models.AccountModel{}, err
	}

	name, err := s.storage.GetItem(ctx, AccountNameKey)
	if err != nil && !errors.Is(err, store.ErrItemNotFound) {
		return models.AccountModel{}, fmt.Errorf("read account name: %w", err)
	}

	return models.AccountModel{AccessToken: token.Raw, Name: name}, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.storage.RemoveItem(ctx, store.AccessTokenKey); err != nil {
		return fmt.Errorf("remove access token: %w", err)
	}
	if err := s.storage.RemoveItem(ctx, AccountNameKey); err != nil {
		return fmt.Errorf("remove account name: %w", err)
	}

	return nil
}
