package service

import (
	"context"
	"sync"
	"time"

	"github.com/akarpov/go-dash-sync/internal/config"
)

// clientSyncJob periodically refreshes the activity cache. It is idle until
// Start is called.
type clientSyncJob struct {
	activityService ClientActivityService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls
// activityService.Refresh on a ticker.
func NewClientSyncJob(activityService ClientActivityService) ClientSyncJob {
	return &clientSyncJob{activityService: activityService}
}

// Start implements [ClientSyncJob]. It stops any previously running job,
// then launches a background goroutine that refreshes every interval. If
// interval is zero or negative the configured default applies. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultAutoSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, _ = j.activityService.Refresh(jobCtx)
			}
		}
	}()
}

// Stop implements [ClientSyncJob]. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
