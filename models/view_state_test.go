package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultViewState(t *testing.T) {
	now := time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)

	state := DefaultViewState(now)

	assert.Equal(t, DefaultSortOption, state.SortOption)
	assert.Equal(t, "2026-08-24", state.DatePickerValue)
	assert.Empty(t, state.SelectedActivityID)
	assert.True(t, state.Filter.IsZero())
	assert.Nil(t, state.UpdatedAt)
}

func TestDefaultViewState_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*60*60)
	// 23:30 on the 24th in UTC+14 is still the 24th in that zone,
	// but 09:30 on the 24th in UTC.
	now := time.Date(2026, 8, 24, 23, 30, 0, 0, loc)

	state := DefaultViewState(now)
	assert.Equal(t, "2026-08-24", state.DatePickerValue)
}

func TestSortOption_Valid(t *testing.T) {
	for _, opt := range []SortOption{SortDateNewest, SortDateOldest, SortPriority, SortScore, SortStatusOrder} {
		assert.True(t, opt.Valid(), opt)
	}
	assert.False(t, SortOption("").Valid())
	assert.False(t, SortOption("alphabetical").Valid())
}

func TestFilterState_Normalize(t *testing.T) {
	f := FilterState{
		Statuses:   []string{"waiting", "completed", "waiting"},
		Categories: []string{"b", "a", "b"},
	}

	f.Normalize()

	assert.Equal(t, []string{"completed", "waiting"}, f.Statuses)
	assert.Equal(t, []string{"a", "b"}, f.Categories)
}

func TestFilterState_Equal_IgnoresOrderAndDuplicates(t *testing.T) {
	a := FilterState{Statuses: []string{"x", "y"}, DateFrom: "2026-01-01"}
	b := FilterState{Statuses: []string{"y", "x", "y"}, DateFrom: "2026-01-01"}

	assert.True(t, a.Equal(b))

	b.DateTo = "2026-02-01"
	assert.False(t, a.Equal(b))
}

func TestViewStateUpdate_ApplyTo(t *testing.T) {
	state := DefaultViewState(time.Now())

	sort := SortDateOldest
	selected := "task-42"
	update := ViewStateUpdate{
		SortOption:         &sort,
		SelectedActivityID: &selected,
	}

	update.ApplyTo(&state)

	assert.Equal(t, SortDateOldest, state.SortOption)
	assert.Equal(t, "task-42", state.SelectedActivityID)
	// untouched fields survive
	assert.NotEmpty(t, state.DatePickerValue)
}

func TestViewStateUpdate_ApplyTo_NormalizesFilter(t *testing.T) {
	var state ViewState

	update := ViewStateUpdate{
		Filter: &FilterState{Statuses: []string{"b", "a", "a"}},
	}
	update.ApplyTo(&state)

	require.Equal(t, []string{"a", "b"}, state.Filter.Statuses)
}

func TestViewStateUpdate_IsZero(t *testing.T) {
	assert.True(t, ViewStateUpdate{}.IsZero())
	assert.True(t, ViewStateUpdate{Seq: 7}.IsZero())

	v := "x"
	assert.False(t, ViewStateUpdate{DatePickerValue: &v}.IsZero())
}

func TestViewState_Equal_IgnoresUpdatedAt(t *testing.T) {
	now := time.Now()
	a := ViewState{SortOption: SortScore, UpdatedAt: &now}
	b := ViewState{SortOption: SortScore}

	assert.True(t, a.Equal(b))
}
