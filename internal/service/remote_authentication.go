package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/MKhiriev/go-enquete/internal/adapter"
	"github.com/MKhiriev/go-enquete/internal/logger"
	"github.com/MKhiriev/go-enquete/internal/utils"
	"github.com/MKhiriev/go-enquete/models"
)

type remoteAuthentication struct {
	url    string
	client adapter.HTTPPostClient
	ids    *utils.RequestIDs

	logger *logger.Logger
}

// NewRemoteAuthentication returns an [Authentication] that posts credentials
// to url through client.
func NewRemoteAuthentication(url string, client adapter.HTTPPostClient, logger *logger.Logger) Authentication {
	return &remoteAuthentication{
		url:    url,
		client: client,
		ids:    utils.NewRequestIDs(),
		logger: logger,
	}
}

func (a *remoteAuthentication) Auth(ctx context.Context, params models.AuthenticationParams) (models.AccountModel, error) {
	ctx, requestID := a.ids.Ensure(ctx)
	log := a.logger.With().
		Str("func", "remoteAuthentication.Auth").
		Str("request_id", requestID).
		Logger()

	resp, err := a.client.Post(ctx, adapter.HTTPPostParams{URL: a.url, Body: params})
	if err != nil {
		log.Err(err).Msg("authentication request failed")
		return models.AccountModel{}, fmt.Errorf("%w: %w", ErrUnexpected, err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		var account models.AccountModel
		if err = json.Unmarshal(resp.Body, &account); err != nil {
			log.Err(err).Msg("undecodable authentication response")
			return models.AccountModel{}, fmt.Errorf("%w: decode account: %w", ErrUnexpected, err)
		}
		if account.AccessToken == "" {
			log.Error().Msg("authentication response without access token")
			return models.AccountModel{}, fmt.Errorf("%w: empty access token", ErrUnexpected)
		}

		log.Info().Msg("authenticated")
		return account, nil
	case http.StatusUnauthorized:
		log.Info().Msg("invalid credentials")
		return models.AccountModel{}, ErrInvalidCredentials
	default:
		log.Error().Int("status", resp.StatusCode).Msg("unexpected authentication status")
		return models.AccountModel{}, fmt.Errorf("%w: status %d", ErrUnexpected, resp.StatusCode)
	}
}
