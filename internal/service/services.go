package service

import (
	"github.com/akarpov/go-dash-sync/internal/config"
	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/internal/store"
)

// Services groups the server-side services passed to the HTTP handler layer.
type Services struct {
	AuthService      AuthService
	ViewStateService ViewStateService
	ActivityService  ActivityService
}

// NewServices wires all server services to their repositories.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		ViewStateService: NewViewStateService(storages.ViewStateRepository, logger),
		ActivityService:  NewActivityService(storages.ActivityRepository, logger),
	}
}
