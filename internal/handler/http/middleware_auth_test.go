package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/akarpov/go-dash-sync/internal/service"
	"github.com/akarpov/go-dash-sync/models"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/state", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "no token part", header: "Bearer"},
		{name: "empty token", header: "Bearer "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t)

			req := httptest.NewRequest(http.MethodGet, "/api/dashboard/state", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()

			h.Init().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_RejectsInvalidToken(t *testing.T) {
	h, mocks := newTestHandler(t)

	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "bad-token").
		Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)

	req := httptest.NewRequest(http.MethodGet, "/api/activities", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = getTokenFromAuthHeader("Bearer")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
