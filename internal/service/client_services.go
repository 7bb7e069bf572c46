package service

import (
	"github.com/akarpov/go-dash-sync/internal/adapter"
	"github.com/akarpov/go-dash-sync/internal/config"
	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/internal/store"
)

// ClientServices groups the client-side services.
type ClientServices struct {
	SessionService  ClientSessionService
	ViewStateSync   ViewStateSync
	ActivityService ClientActivityService
	SyncJob         ClientSyncJob
}

// NewClientServices wires the client services to the local cache and the
// server adapter.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.StructuredConfig, log *logger.Logger) *ClientServices {
	viewStateSync := NewViewStateSync(serverAdapter, localStore.Cache, cfg.Sync, log)
	activitySvc := NewClientActivityService(serverAdapter, localStore.Cache, log)

	return &ClientServices{
		SessionService:  NewClientSessionService(serverAdapter, localStore.Cache, viewStateSync, log),
		ViewStateSync:   viewStateSync,
		ActivityService: activitySvc,
		SyncJob:         NewClientSyncJob(activitySvc),
	}
}
