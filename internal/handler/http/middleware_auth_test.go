package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/med-cabinet/internal/utils"
	"github.com/MKhiriev/med-cabinet/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nextCapture records whether the wrapped handler ran and what user id it saw.
type nextCapture struct {
	called bool
	userID int64
	hasID  bool
}

func (n *nextCapture) handler() http.Handler {
	return http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		n.called = true
		n.userID, n.hasID = utils.GetUserIDFromContext(r.Context())
	})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "good-token", tokenString)
			return models.Token{UserID: 42}, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/api/medication/get", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.True(t, next.called)
	require.True(t, next.hasID)
	assert.Equal(t, int64(42), next.userID)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/api/medication/get", nil)
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	for _, header := range []string{"Bearer", "Bearer ", "just-a-token-without-scheme"} {
		next := &nextCapture{}
		req := httptest.NewRequest(http.MethodGet, "/api/medication/get", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		h.auth(next.handler()).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		assert.False(t, next.called, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, errors.New("token is expired or invalid")
		},
	}
	h := newHandlerWithAuth(t, auth)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/api/medication/get", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}
