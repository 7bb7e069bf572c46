package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/akarpov/go-dash-sync/internal/adapter"
	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/internal/store"
	"github.com/akarpov/go-dash-sync/models"
)

// clientActivityService is the concrete implementation of
// [ClientActivityService].
type clientActivityService struct {
	adapter adapter.ServerAdapter
	cache   store.CacheRepository
	logger  *logger.Logger
}

// NewClientActivityService constructs a [ClientActivityService].
func NewClientActivityService(serverAdapter adapter.ServerAdapter, cache store.CacheRepository, log *logger.Logger) ClientActivityService {
	return &clientActivityService{
		adapter: serverAdapter,
		cache:   cache,
		logger:  log,
	}
}

// Refresh implements [ClientActivityService].
func (s *clientActivityService) Refresh(ctx context.Context) ([]models.Activity, error) {
	activities, err := s.adapter.FetchActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching activities failed: %w", err)
	}

	if cacheErr := s.cache.SaveActivities(ctx, activities); cacheErr != nil {
		logger.FromContext(ctx).Warn().Err(cacheErr).Msg("failed to cache activities")
	}

	return activities, nil
}

// List implements [ClientActivityService]. A transient remote failure falls
// back to the cached list; everything else surfaces.
func (s *clientActivityService) List(ctx context.Context, state models.ViewState) ([]models.Activity, error) {
	activities, err := s.Refresh(ctx)
	if err != nil {
		if !errors.Is(err, adapter.ErrRemoteUnavailable) {
			return nil, err
		}

		logger.FromContext(ctx).Warn().Err(err).Msg("remote unavailable, serving cached activities")
		activities, err = s.cache.GetActivities(ctx)
		if err != nil {
			return nil, fmt.Errorf("no cached activities available: %w", err)
		}
	}

	filtered := filterActivities(activities, state.Filter)
	sortActivities(filtered, state.SortOption)

	return filtered, nil
}

func filterActivities(activities []models.Activity, filter models.FilterState) []models.Activity {
	filter.Normalize()

	out := make([]models.Activity, 0, len(activities))
	for _, a := range activities {
		if len(filter.Statuses) > 0 && !containsString(filter.Statuses, string(a.Status)) {
			continue
		}
		if len(filter.Categories) > 0 && !containsString(filter.Categories, a.Category) {
			continue
		}
		if !withinDateRange(a.DueDate, filter.DateFrom, filter.DateTo) {
			continue
		}
		out = append(out, a)
	}

	return out
}

func containsString(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

// withinDateRange checks the due date against inclusive bounds. An activity
// without a due date passes only when no bound is set; an unparsable bound
// is ignored.
func withinDateRange(due *time.Time, from, to string) bool {
	if from == "" && to == "" {
		return true
	}
	if due == nil {
		return false
	}

	day := due.UTC().Truncate(24 * time.Hour)
	if from != "" {
		if bound, err := time.Parse(models.DateLayout, from); err == nil && day.Before(bound) {
			return false
		}
	}
	if to != "" {
		if bound, err := time.Parse(models.DateLayout, to); err == nil && day.After(bound) {
			return false
		}
	}

	return true
}

// sortActivities orders the list in place. Ties keep their incoming order
// so repeated renders are stable.
func sortActivities(activities []models.Activity, option models.SortOption) {
	less := func(a, b models.Activity) bool { return dueAfter(a, b) }

	switch option {
	case models.SortDateOldest:
		less = func(a, b models.Activity) bool { return dueBefore(a, b) }
	case models.SortPriority:
		less = func(a, b models.Activity) bool { return a.Priority > b.Priority }
	case models.SortScore:
		less = func(a, b models.Activity) bool { return a.Score > b.Score }
	case models.SortStatusOrder:
		less = func(a, b models.Activity) bool { return models.StatusRank(a.Status) < models.StatusRank(b.Status) }
	}

	sort.SliceStable(activities, func(i, j int) bool { return less(activities[i], activities[j]) })
}

// dueAfter reports whether a is due later than b; missing due dates sort
// last.
func dueAfter(a, b models.Activity) bool {
	switch {
	case a.DueDate == nil:
		return false
	case b.DueDate == nil:
		return true
	default:
		return a.DueDate.After(*b.DueDate)
	}
}

// dueBefore is the oldest-first counterpart; missing due dates still sort
// last.
func dueBefore(a, b models.Activity) bool {
	switch {
	case a.DueDate == nil:
		return false
	case b.DueDate == nil:
		return true
	default:
		return a.DueDate.Before(*b.DueDate)
	}
}
