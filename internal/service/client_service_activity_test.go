package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akarpov/go-dash-sync/internal/adapter"
	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/internal/mock"
	"github.com/akarpov/go-dash-sync/internal/service"
	"github.com/akarpov/go-dash-sync/models"
)

func day(value string) *time.Time {
	t, err := time.Parse(models.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return &t
}

func testActivities() []models.Activity {
	return []models.Activity{
		{ID: "a-1", Title: "Report", Status: models.StatusCompleted, Category: "finance", Priority: 1, Score: 0.3, DueDate: day("2026-08-10")},
		{ID: "a-2", Title: "Review", Status: models.StatusInProgress, Category: "ops", Priority: 3, Score: 0.9, DueDate: day("2026-08-20")},
		{ID: "a-3", Title: "Plan", Status: models.StatusWaiting, Category: "ops", Priority: 2, Score: 0.5, DueDate: day("2026-08-15")},
		{ID: "a-4", Title: "Backlog", Status: models.StatusNotStarted, Category: "finance", Priority: 5, Score: 0.1},
	}
}

func newTestActivityService(t *testing.T) (service.ClientActivityService, *mock.MockServerAdapter, *mock.MockCacheRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	adapterMock := mock.NewMockServerAdapter(ctrl)
	cacheMock := mock.NewMockCacheRepository(ctrl)

	return service.NewClientActivityService(adapterMock, cacheMock, logger.Nop()), adapterMock, cacheMock
}

func ids(activities []models.Activity) []string {
	out := make([]string, 0, len(activities))
	for _, a := range activities {
		out = append(out, a.ID)
	}
	return out
}

func TestClientActivity_ListSortsNewestFirst(t *testing.T) {
	svc, adapterMock, cacheMock := newTestActivityService(t)

	adapterMock.EXPECT().FetchActivities(gomock.Any()).Return(testActivities(), nil)
	cacheMock.EXPECT().SaveActivities(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.List(context.Background(), models.ViewState{SortOption: models.SortDateNewest})
	require.NoError(t, err)
	// missing due dates sort last
	assert.Equal(t, []string{"a-2", "a-3", "a-1", "a-4"}, ids(got))
}

func TestClientActivity_ListSortOrders(t *testing.T) {
	tests := []struct {
		name string
		sort models.SortOption
		want []string
	}{
		{name: "oldest first", sort: models.SortDateOldest, want: []string{"a-1", "a-3", "a-2", "a-4"}},
		{name: "priority", sort: models.SortPriority, want: []string{"a-4", "a-2", "a-3", "a-1"}},
		{name: "score", sort: models.SortScore, want: []string{"a-2", "a-3", "a-1", "a-4"}},
		{name: "status order", sort: models.SortStatusOrder, want: []string{"a-2", "a-4", "a-3", "a-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, adapterMock, cacheMock := newTestActivityService(t)
			adapterMock.EXPECT().FetchActivities(gomock.Any()).Return(testActivities(), nil)
			cacheMock.EXPECT().SaveActivities(gomock.Any(), gomock.Any()).Return(nil)

			got, err := svc.List(context.Background(), models.ViewState{SortOption: tt.sort})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestClientActivity_ListFilters(t *testing.T) {
	tests := []struct {
		name   string
		filter models.FilterState
		want   []string
	}{
		{name: "by status", filter: models.FilterState{Statuses: []string{"in_progress", "waiting"}}, want: []string{"a-2", "a-3"}},
		{name: "by category", filter: models.FilterState{Categories: []string{"finance"}}, want: []string{"a-1", "a-4"}},
		{name: "by date range", filter: models.FilterState{DateFrom: "2026-08-12", DateTo: "2026-08-18"}, want: []string{"a-3"}},
		{name: "range excludes missing due dates", filter: models.FilterState{DateFrom: "2026-08-01"}, want: []string{"a-2", "a-3", "a-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, adapterMock, cacheMock := newTestActivityService(t)
			adapterMock.EXPECT().FetchActivities(gomock.Any()).Return(testActivities(), nil)
			cacheMock.EXPECT().SaveActivities(gomock.Any(), gomock.Any()).Return(nil)

			got, err := svc.List(context.Background(), models.ViewState{SortOption: models.SortDateNewest, Filter: tt.filter})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestClientActivity_ListServesCacheWhenRemoteUnavailable(t *testing.T) {
	svc, adapterMock, cacheMock := newTestActivityService(t)

	adapterMock.EXPECT().FetchActivities(gomock.Any()).Return(nil, adapter.ErrRemoteUnavailable)
	cacheMock.EXPECT().GetActivities(gomock.Any()).Return(testActivities(), nil)

	got, err := svc.List(context.Background(), models.ViewState{SortOption: models.SortDateNewest})
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestClientActivity_ListSurfacesAuthErrors(t *testing.T) {
	svc, adapterMock, _ := newTestActivityService(t)

	adapterMock.EXPECT().FetchActivities(gomock.Any()).Return(nil, adapter.ErrUnauthenticated)

	_, err := svc.List(context.Background(), models.ViewState{})
	assert.ErrorIs(t, err, adapter.ErrUnauthenticated)
}

func TestClientActivity_RefreshReplacesCache(t *testing.T) {
	svc, adapterMock, cacheMock := newTestActivityService(t)

	activities := testActivities()
	adapterMock.EXPECT().FetchActivities(gomock.Any()).Return(activities, nil)
	cacheMock.EXPECT().SaveActivities(gomock.Any(), activities).Return(nil)

	got, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, activities, got)
}
