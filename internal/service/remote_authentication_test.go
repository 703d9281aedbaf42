package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-enquete/internal/adapter"
	"github.com/MKhiriev/go-enquete/internal/logger"
	"github.com/MKhiriev/go-enquete/internal/mock"
	"github.com/MKhiriev/go-enquete/internal/utils"
	"github.com/MKhiriev/go-enquete/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testLoginURL = "/login"

// newTestAuth is a helper that builds remoteAuthentication on top of a mocked client.
func newTestAuth(t *testing.T, ctrl *gomock.Controller) (*remoteAuthentication, *mock.MockHTTPPostClient) {
	t.Helper()
	client := mock.NewMockHTTPPostClient(ctrl)
	auth := NewRemoteAuthentication(testLoginURL, client, logger.Nop()).(*remoteAuthentication)
	return auth, client
}

var validParams = models.AuthenticationParams{Email: "user@example.com", Password: "12345"}

// ── request ──────────────────────────────────────────────────────────────────

func TestRemoteAuthentication_PostsCredentialsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth, client := newTestAuth(t, ctrl)

	client.EXPECT().
		Post(gomock.Any(), adapter.HTTPPostParams{URL: testLoginURL, Body: validParams}).
		DoAndReturn(func(ctx context.Context, _ adapter.HTTPPostParams) (adapter.HTTPResponse, error) {
			requestID, ok := utils.GetRequestIDFromContext(ctx)
			assert.True(t, ok, "request id must travel with the context")
			assert.NotEmpty(t, requestID)
			return adapter.HTTPResponse{StatusCode: http.StatusOK, Body: []byte(`{"accessToken":"any_token"}`)}, nil
		}).
		Times(1)

	_, err := auth.Auth(context.Background(), validParams)
	require.NoError(t, err)
}

func TestRemoteAuthentication_KeepsCallerRequestID(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth, client := newTestAuth(t, ctrl)

	client.EXPECT().Post(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ adapter.HTTPPostParams) (adapter.HTTPResponse, error) {
			requestID, _ := utils.GetRequestIDFromContext(ctx)
			assert.Equal(t, "req-7", requestID)
			return adapter.HTTPResponse{StatusCode: http.StatusOK, Body: []byte(`{"accessToken":"any_token"}`)}, nil
		})

	_, err := auth.Auth(utils.WithRequestID(context.Background(), "req-7"), validParams)
	require.NoError(t, err)
}

// ── responses ────────────────────────────────────────────────────────────────

func TestRemoteAuthentication_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth, client := newTestAuth(t, ctrl)

	client.EXPECT().Post(gomock.Any(), gomock.Any()).Return(adapter.HTTPResponse{
		StatusCode: http.StatusOK,
		Body:       []byte(`{"accessToken":"any_token","name":"Rodrigo"}`),
	}, nil)

	account, err := auth.Auth(context.Background(), validParams)

	require.NoError(t, err)
	assert.Equal(t, models.AccountModel{AccessToken: "any_token", Name: "Rodrigo"}, account)
}

func TestRemoteAuthentication_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth, client := newTestAuth(t, ctrl)

	client.EXPECT().Post(gomock.Any(), gomock.Any()).
		Return(adapter.HTTPResponse{StatusCode: http.StatusUnauthorized}, nil)

	account, err := auth.Auth(context.Background(), validParams)

	assert.Zero(t, account)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, "Credenciais inválidas", err.Error())
}

func TestRemoteAuthentication_UnexpectedResponses(t *testing.T) {
	tests := []struct {
		name string
		resp adapter.HTTPResponse
	}{
		{name: "bad request", resp: adapter.HTTPResponse{StatusCode: http.StatusBadRequest}},
		{name: "not found", resp: adapter.HTTPResponse{StatusCode: http.StatusNotFound}},
		{name: "server error", resp: adapter.HTTPResponse{StatusCode: http.StatusInternalServerError}},
		{name: "created is not ok", resp: adapter.HTTPResponse{StatusCode: http.StatusCreated, Body: []byte(`{"accessToken":"x"}`)}},
		{name: "undecodable body", resp: adapter.HTTPResponse{StatusCode: http.StatusOK, Body: []byte(`<html>`)}},
		{name: "missing token", resp: adapter.HTTPResponse{StatusCode: http.StatusOK, Body: []byte(`{"name":"x"}`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth, client := newTestAuth(t, ctrl)

			client.EXPECT().Post(gomock.Any(), gomock.Any()).Return(tt.resp, nil)

			account, err := auth.Auth(context.Background(), validParams)

			assert.Zero(t, account)
			assert.ErrorIs(t, err, ErrUnexpected)
			assert.NotErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

// TestRemoteAuthentication_TransportError verifies that the cause stays
// reachable for logs while the error still reads as unexpected.
func TestRemoteAuthentication_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth, client := newTestAuth(t, ctrl)

	cause := errors.New("connection refused")
	client.EXPECT().Post(gomock.Any(), gomock.Any()).Return(adapter.HTTPResponse{}, cause)

	_, err := auth.Auth(context.Background(), validParams)

	assert.ErrorIs(t, err, ErrUnexpected)
	assert.ErrorIs(t, err, cause)
}

func TestRemoteAuthentication_CancelledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth, client := newTestAuth(t, ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client.EXPECT().Post(gomock.Any(), gomock.Any()).Return(adapter.HTTPResponse{}, context.Canceled)

	_, err := auth.Auth(ctx, validParams)

	assert.ErrorIs(t, err, context.Canceled)
}
