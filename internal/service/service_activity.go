package service

import (
	"context"
	"fmt"

	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/internal/store"
	"github.com/akarpov/go-dash-sync/models"
)

// activityService is the concrete implementation of [ActivityService].
type activityService struct {
	repository store.ActivityRepository
	logger     *logger.Logger
}

// NewActivityService constructs an [ActivityService] backed by the given
// repository.
func NewActivityService(repository store.ActivityRepository, logger *logger.Logger) ActivityService {
	return &activityService{
		repository: repository,
		logger:     logger,
	}
}

// ListActivities returns all activities belonging to userID.
func (s *activityService) ListActivities(ctx context.Context, userID int64) ([]models.Activity, error) {
	activities, err := s.repository.ListActivities(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing activities failed: %w", err)
	}

	return activities, nil
}
