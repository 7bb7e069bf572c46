package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akarpov/go-dash-sync/internal/config"
	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/models"
)

func newTestCache(t *testing.T) CacheRepository {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.Cache{Path: ":memory:"}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to open in-memory cache: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewCacheRepository(db, logger.Nop())
}

func TestCacheRepository_SessionRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if _, err := cache.GetSession(ctx); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound on empty cache, got %v", err)
	}

	session := models.Session{UserID: 42, Login: "john", Token: "jwt-token", SavedAt: time.Now().UTC()}
	if err := cache.SaveSession(ctx, session); err != nil {
		t.Fatalf("save session: %v", err)
	}

	got, err := cache.GetSession(ctx)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got.UserID != 42 || got.Login != "john" || got.Token != "jwt-token" {
		t.Errorf("unexpected session: %+v", got)
	}

	// replacing the session keeps a single row
	session.Token = "newer-token"
	if err = cache.SaveSession(ctx, session); err != nil {
		t.Fatalf("replace session: %v", err)
	}
	got, err = cache.GetSession(ctx)
	if err != nil {
		t.Fatalf("get replaced session: %v", err)
	}
	if got.Token != "newer-token" {
		t.Errorf("expected replaced token, got %q", got.Token)
	}

	if err = cache.ClearSession(ctx); err != nil {
		t.Fatalf("clear session: %v", err)
	}
	if _, err = cache.GetSession(ctx); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after clear, got %v", err)
	}
}

func TestCacheRepository_Activities(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if _, err := cache.GetActivities(ctx); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss on empty cache, got %v", err)
	}

	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	activities := []models.Activity{
		{ID: "a-1", Title: "Report", Status: models.StatusInProgress, Priority: 2, Score: 0.5, DueDate: &due},
		{ID: "a-2", Title: "Review", Status: models.StatusWaiting, Category: "ops"},
	}
	if err := cache.SaveActivities(ctx, activities); err != nil {
		t.Fatalf("save activities: %v", err)
	}

	got, err := cache.GetActivities(ctx)
	if err != nil {
		t.Fatalf("get activities: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 cached activities, got %d", len(got))
	}
	if got[0].ID != "a-1" || got[0].DueDate == nil || !got[0].DueDate.Equal(due) {
		t.Errorf("unexpected first activity: %+v", got[0])
	}
	if got[1].DueDate != nil {
		t.Errorf("expected nil due date, got %v", got[1].DueDate)
	}

	// an empty refresh is a valid cached value, not a miss
	if err = cache.SaveActivities(ctx, nil); err != nil {
		t.Fatalf("save empty activities: %v", err)
	}
	got, err = cache.GetActivities(ctx)
	if err != nil {
		t.Fatalf("get empty activities: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty cached list, got %d items", len(got))
	}
}

func TestCacheRepository_CommittedState(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if _, err := cache.GetCommittedState(ctx); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss on empty cache, got %v", err)
	}

	state := models.ViewState{
		SelectedActivityID: "a-1",
		SortOption:         models.SortStatusOrder,
		Filter:             models.FilterState{Statuses: []string{"waiting"}},
		DatePickerValue:    "2026-08-24",
	}
	if err := cache.SaveCommittedState(ctx, state); err != nil {
		t.Fatalf("save committed state: %v", err)
	}

	got, err := cache.GetCommittedState(ctx)
	if err != nil {
		t.Fatalf("get committed state: %v", err)
	}
	if !got.Equal(state) {
		t.Errorf("round-tripped state differs: %+v vs %+v", got, state)
	}

	if err = cache.ClearCommittedState(ctx); err != nil {
		t.Fatalf("clear committed state: %v", err)
	}
	if _, err = cache.GetCommittedState(ctx); !errors.Is(err, ErrCacheMiss) {
		t.Fatalf("expected ErrCacheMiss after clear, got %v", err)
	}
}
