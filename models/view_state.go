package models

import (
	"slices"
	"time"
)

// DateLayout is the wire format of all calendar dates in the view state
// (the date picker value and filter date bounds).
const DateLayout = "2006-01-02"

// SortOption enumerates the orderings the dashboard can apply to the
// activity list.
type SortOption string

const (
	SortDateNewest  SortOption = "date_newest"
	SortDateOldest  SortOption = "date_oldest"
	SortPriority    SortOption = "priority"
	SortScore       SortOption = "score"
	SortStatusOrder SortOption = "status_order"
)

// DefaultSortOption is the ordering applied when the user has never chosen
// one.
const DefaultSortOption = SortDateNewest

// Valid reports whether s is one of the known sort options.
func (s SortOption) Valid() bool {
	switch s {
	case SortDateNewest, SortDateOldest, SortPriority, SortScore, SortStatusOrder:
		return true
	default:
		return false
	}
}

// FilterState describes the active dashboard filters. Statuses and
// Categories are sets: order and duplicates carry no meaning. DateFrom and
// DateTo are inclusive bounds in [DateLayout] format, empty when unset.
type FilterState struct {
	Statuses   []string `json:"statuses,omitempty"`
	Categories []string `json:"categories,omitempty"`
	DateFrom   string   `json:"date_from,omitempty"`
	DateTo     string   `json:"date_to,omitempty"`
}

// Normalize sorts both sets and removes duplicates, making two logically
// equal filters comparable field-by-field.
func (f *FilterState) Normalize() {
	f.Statuses = normalizeSet(f.Statuses)
	f.Categories = normalizeSet(f.Categories)
}

func normalizeSet(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

// Equal reports whether two filters select the same activities. Set order
// and duplicates are ignored.
func (f FilterState) Equal(other FilterState) bool {
	f.Normalize()
	other.Normalize()
	return slices.Equal(f.Statuses, other.Statuses) &&
		slices.Equal(f.Categories, other.Categories) &&
		f.DateFrom == other.DateFrom &&
		f.DateTo == other.DateTo
}

// IsZero reports whether the filter restricts nothing.
func (f FilterState) IsZero() bool {
	return len(f.Statuses) == 0 && len(f.Categories) == 0 && f.DateFrom == "" && f.DateTo == ""
}

// ViewState is the complete per-user dashboard view state as exchanged with
// the server: the selected activity, the active sort, the filters, and the
// date picker value.
//
// UpdatedAt is server-assigned on every persisted write; it is nil for a
// state that was never stored (defaults).
type ViewState struct {
	SelectedActivityID string      `json:"selected_activity_id"`
	SortOption         SortOption  `json:"sort_option"`
	Filter             FilterState `json:"filter"`
	DatePickerValue    string      `json:"date_picker_value"`
	UpdatedAt          *time.Time  `json:"updated_at,omitempty"`
}

// DefaultViewState returns the state presented to a user who has nothing
// stored: no selection, the default sort, no filters, and the date picker
// set to the current day in UTC.
func DefaultViewState(now time.Time) ViewState {
	return ViewState{
		SortOption:      DefaultSortOption,
		DatePickerValue: now.UTC().Format(DateLayout),
	}
}

// Equal reports whether two states are logically identical. UpdatedAt is a
// persistence timestamp, not part of the state, and is ignored.
func (s ViewState) Equal(other ViewState) bool {
	return s.SelectedActivityID == other.SelectedActivityID &&
		s.SortOption == other.SortOption &&
		s.DatePickerValue == other.DatePickerValue &&
		s.Filter.Equal(other.Filter)
}

// ViewStateUpdate is a partial view-state write. Nil fields are left
// untouched by the server; non-nil fields overwrite the stored value,
// including explicit clears (e.g. a pointer to an empty string deselects the
// activity).
//
// Seq orders writes from a single client session. It increases with every
// scheduled save, letting the server drop a write that arrives after a newer
// one has already been applied.
type ViewStateUpdate struct {
	SelectedActivityID *string      `json:"selected_activity_id,omitempty"`
	SortOption         *SortOption  `json:"sort_option,omitempty"`
	Filter             *FilterState `json:"filter,omitempty"`
	DatePickerValue    *string      `json:"date_picker_value,omitempty"`

	Seq uint64 `json:"seq,omitempty"`
}

// IsZero reports whether the update carries no field changes. Seq alone does
// not make an update non-empty.
func (u ViewStateUpdate) IsZero() bool {
	return u.SelectedActivityID == nil && u.SortOption == nil && u.Filter == nil && u.DatePickerValue == nil
}

// ApplyTo overwrites the fields of state for which the update carries a
// value. Filters are normalised on the way in.
func (u ViewStateUpdate) ApplyTo(state *ViewState) {
	if u.SelectedActivityID != nil {
		state.SelectedActivityID = *u.SelectedActivityID
	}
	if u.SortOption != nil {
		state.SortOption = *u.SortOption
	}
	if u.Filter != nil {
		f := *u.Filter
		f.Normalize()
		state.Filter = f
	}
	if u.DatePickerValue != nil {
		state.DatePickerValue = *u.DatePickerValue
	}
}
