package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/models"
)

func newTestViewStateRepo(t *testing.T) (*viewStateRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &viewStateRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func viewStateRows(state models.ViewState, filterJSON string, updatedAt time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"selected_activity_id", "sort_option", "filter", "date_picker_value", "updated_at"}).
		AddRow(state.SelectedActivityID, string(state.SortOption), []byte(filterJSON), state.DatePickerValue, updatedAt)
}

func TestGetViewState_Success(t *testing.T) {
	repo, mock, db := newTestViewStateRepo(t)
	defer db.Close()

	now := time.Now()
	stored := models.ViewState{
		SelectedActivityID: "task-9",
		SortOption:         models.SortPriority,
		DatePickerValue:    "2026-08-24",
	}
	mock.ExpectQuery("SELECT selected_activity_id, sort_option, filter").
		WithArgs(int64(1)).
		WillReturnRows(viewStateRows(stored, `{"statuses":["waiting"]}`, now))

	state, err := repo.GetViewState(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.SelectedActivityID != "task-9" {
		t.Errorf("expected selection task-9, got %q", state.SelectedActivityID)
	}
	if len(state.Filter.Statuses) != 1 || state.Filter.Statuses[0] != "waiting" {
		t.Errorf("expected decoded filter, got %+v", state.Filter)
	}
	if state.UpdatedAt == nil {
		t.Error("expected UpdatedAt to be populated")
	}
}

func TestGetViewState_NotFound(t *testing.T) {
	repo, mock, db := newTestViewStateRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT selected_activity_id, sort_option, filter").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"selected_activity_id", "sort_option", "filter", "date_picker_value", "updated_at"}))

	_, err := repo.GetViewState(context.Background(), 1)
	if !errors.Is(err, ErrViewStateNotFound) {
		t.Fatalf("expected ErrViewStateNotFound, got %v", err)
	}
}

func TestUpsertViewState_AppliesPartialUpdate(t *testing.T) {
	repo, mock, db := newTestViewStateRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	sort := models.SortScore
	update := models.ViewStateUpdate{SortOption: &sort, Seq: 3}

	merged := models.ViewState{
		SelectedActivityID: "task-9",
		SortOption:         models.SortScore,
		DatePickerValue:    "2026-08-24",
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO dashboard_states").
		WithArgs(int64(1), string(models.DefaultSortOption), now.Format(models.DateLayout), now).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("UPDATE dashboard_states").
		WithArgs(uint64(3), now, string(models.SortScore), int64(1), uint64(3)).
		WillReturnRows(viewStateRows(merged, `{}`, now))
	mock.ExpectCommit()

	state, err := repo.UpsertViewState(context.Background(), 1, update, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.SortOption != models.SortScore {
		t.Errorf("expected merged sort option, got %q", state.SortOption)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpsertViewState_StaleSequenceKeepsRow(t *testing.T) {
	repo, mock, db := newTestViewStateRepo(t)
	defer db.Close()

	now := time.Now().UTC()
	selected := "task-old"
	update := models.ViewStateUpdate{SelectedActivityID: &selected, Seq: 2}

	current := models.ViewState{
		SelectedActivityID: "task-new",
		SortOption:         models.SortDateNewest,
		DatePickerValue:    "2026-08-24",
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO dashboard_states").
		WillReturnResult(sqlmock.NewResult(0, 0))
	// seq guard: stored row is at seq 5, nothing matches
	mock.ExpectQuery("UPDATE dashboard_states").
		WillReturnRows(sqlmock.NewRows([]string{"selected_activity_id", "sort_option", "filter", "date_picker_value", "updated_at"}))
	mock.ExpectQuery("SELECT selected_activity_id, sort_option, filter").
		WithArgs(int64(1)).
		WillReturnRows(viewStateRows(current, `{}`, now))
	mock.ExpectCommit()

	state, err := repo.UpsertViewState(context.Background(), 1, update, now)
	if !errors.Is(err, ErrStaleUpdate) {
		t.Fatalf("expected ErrStaleUpdate, got %v", err)
	}
	if state.SelectedActivityID != "task-new" {
		t.Errorf("expected the newer row to win, got %q", state.SelectedActivityID)
	}
}

func TestDeleteViewState(t *testing.T) {
	repo, mock, db := newTestViewStateRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM dashboard_states").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteViewState(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBuildViewStateUpdateQuery_OnlyCarriedFields(t *testing.T) {
	selected := ""
	update := models.ViewStateUpdate{SelectedActivityID: &selected, Seq: 9}

	query, args, err := buildViewStateUpdateQuery(1, update, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "selected_activity_id") {
		t.Errorf("expected carried field in query: %s", query)
	}
	for _, col := range []string{"sort_option", "filter", "date_picker_value"} {
		if strings.Contains(query, col+" = ") {
			t.Errorf("field %s must not be written: %s", col, query)
		}
	}
	if !strings.Contains(query, "seq <= ") {
		t.Errorf("expected sequence guard in query: %s", query)
	}
	// seq + updated_at + selected_activity_id + user_id + guard
	if len(args) != 5 {
		t.Errorf("expected 5 args, got %d: %v", len(args), args)
	}
}
