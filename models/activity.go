package models

import "time"

// ActivityStatus enumerates the lifecycle states of a dashboard activity.
type ActivityStatus string

const (
	StatusNotStarted ActivityStatus = "not_started"
	StatusInProgress ActivityStatus = "in_progress"
	StatusWaiting    ActivityStatus = "waiting"
	StatusCompleted  ActivityStatus = "completed"
	StatusDeferred   ActivityStatus = "deferred"
)

// statusOrder fixes the display rank used by the status_order sort.
var statusOrder = map[ActivityStatus]int{
	StatusInProgress: 0,
	StatusNotStarted: 1,
	StatusWaiting:    2,
	StatusDeferred:   3,
	StatusCompleted:  4,
}

// StatusRank returns the position of status in the canonical status
// ordering. Unknown statuses sort last.
func StatusRank(status ActivityStatus) int {
	if rank, ok := statusOrder[status]; ok {
		return rank
	}
	return len(statusOrder)
}

// Valid reports whether s is one of the known activity statuses.
func (s ActivityStatus) Valid() bool {
	_, ok := statusOrder[s]
	return ok
}

// Activity is a single dashboard item as served by the activities endpoint.
type Activity struct {
	ID        string         `json:"id"`
	UserID    int64          `json:"-"`
	Title     string         `json:"title"`
	Status    ActivityStatus `json:"status"`
	Category  string         `json:"category,omitempty"`
	Priority  int            `json:"priority"`
	Score     float64        `json:"score"`
	DueDate   *time.Time     `json:"due_date,omitempty"`
	UpdatedAt *time.Time     `json:"updated_at,omitempty"`
}

// ActivitiesResponse is the wire envelope of the activity list endpoint.
type ActivitiesResponse struct {
	Activities []Activity `json:"activities"`
	Length     int        `json:"length"`
}
