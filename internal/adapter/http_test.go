package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/go-dash-sync/internal/config"
	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/internal/utils"
	"github.com/akarpov/go-dash-sync/models"
)

func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()

	log := logger.Nop()
	a, err := NewHTTPServerAdapter(config.Adapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 2 * time.Second,
		RetryCount:     2,
		RetryWaitTime:  5 * time.Millisecond,
	}, log)
	require.NoError(t, err)

	return a
}

func issueTestToken(t *testing.T, userID int64) string {
	t.Helper()

	token, err := utils.GenerateJWTToken("dash-sync-test", userID, time.Hour, "test-sign-key")
	require.NoError(t, err)

	return token.SignedString
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{name: "empty", address: ""},
		{name: "spaces only", address: "   "},
		{name: "scheme only", address: "http://"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: tt.address}, logger.Nop())
			assert.Error(t, err)
		})
	}
}

func TestHTTPServerAdapter_RetriesExhaustedOnServerError(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.FetchViewState(context.Background())
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
	// RetryCount=2 means 3 attempts total.
	assert.EqualValues(t, 3, attempts.Load())
}

func TestHTTPServerAdapter_RetryWaitDoubles(t *testing.T) {
	var mu sync.Mutex
	var arrivals []time.Time
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		arrivals = append(arrivals, time.Now())
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	const baseWait = 40 * time.Millisecond
	a, err := NewHTTPServerAdapter(config.Adapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 2 * time.Second,
		RetryCount:     2,
		RetryWaitTime:  baseWait,
	}, logger.Nop())
	require.NoError(t, err)

	_, err = a.FetchViewState(context.Background())
	require.ErrorIs(t, err, ErrRemoteUnavailable)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, arrivals, 3)

	firstGap := arrivals[1].Sub(arrivals[0])
	secondGap := arrivals[2].Sub(arrivals[1])

	// the wait before retry n is baseWait<<(n-1): baseWait, then 2*baseWait
	assert.GreaterOrEqual(t, firstGap, baseWait)
	assert.GreaterOrEqual(t, secondGap, 2*baseWait)
}

func TestHTTPServerAdapter_NoRetryOnBadRequest(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, "malformed sort option", http.StatusBadRequest)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.SaveViewState(context.Background(), models.ViewStateUpdate{})
	assert.ErrorIs(t, err, ErrBadRequest)
	assert.EqualValues(t, 1, attempts.Load())
}

func TestHTTPServerAdapter_RecoversWithinRetryBudget(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(models.DefaultViewState(time.Now()))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	state, err := a.FetchViewState(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, attempts.Load())
	assert.Equal(t, models.DefaultSortOption, state.SortOption)
}

func TestHTTPServerAdapter_TransportErrorMapsToRemoteUnavailable(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")

	_, err := a.FetchActivities(context.Background())
	assert.ErrorIs(t, err, ErrRemoteUnavailable)
}

func TestHTTPServerAdapter_Login(t *testing.T) {
	signed := issueTestToken(t, 42)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		require.Equal(t, "gopher", user.Login)

		w.Header().Set("Authorization", "Bearer "+signed)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	token, err := a.Login(context.Background(), models.User{Login: "gopher", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, signed, token.SignedString)
	assert.Equal(t, signed, a.Token(), "token must be stored for subsequent requests")
}

func TestHTTPServerAdapter_Register_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "login already taken", http.StatusConflict)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.Register(context.Background(), models.User{Login: "gopher", Password: "secret"})
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestHTTPServerAdapter_UnauthorizedWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	err := a.ResetViewState(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestHTTPServerAdapter_SaveViewState(t *testing.T) {
	signed := issueTestToken(t, 7)
	updatedAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/dashboard/state", r.URL.Path)
		require.Equal(t, "Bearer "+signed, r.Header.Get("Authorization"))

		var update models.ViewStateUpdate
		require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
		require.NotNil(t, update.SortOption)
		require.Equal(t, models.SortPriority, *update.SortOption)

		merged := models.DefaultViewState(updatedAt)
		merged.SortOption = *update.SortOption
		merged.UpdatedAt = &updatedAt
		_ = json.NewEncoder(w).Encode(merged)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(signed)

	sort := models.SortPriority
	state, err := a.SaveViewState(context.Background(), models.ViewStateUpdate{SortOption: &sort})
	require.NoError(t, err)
	assert.Equal(t, models.SortPriority, state.SortOption)
	require.NotNil(t, state.UpdatedAt)
	assert.True(t, updatedAt.Equal(*state.UpdatedAt))
}

func TestHTTPServerAdapter_FetchActivities(t *testing.T) {
	signed := issueTestToken(t, 7)
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/activities", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.ActivitiesResponse{
			Activities: []models.Activity{
				{ID: "a-1", Title: "Quarterly report", Status: models.StatusInProgress, Priority: 2, DueDate: &due},
			},
			Length: 1,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(signed)

	activities, err := a.FetchActivities(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "a-1", activities[0].ID)
	assert.Equal(t, models.StatusInProgress, activities[0].Status)
}
