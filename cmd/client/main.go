package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akarpov/go-dash-sync/internal/adapter"
	"github.com/akarpov/go-dash-sync/internal/config"
	"github.com/akarpov/go-dash-sync/internal/logger"
	"github.com/akarpov/go-dash-sync/internal/service"
	"github.com/akarpov/go-dash-sync/internal/store"
	"github.com/akarpov/go-dash-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("dash-sync-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	localStorage, err := store.NewClientStorages(ctx, cfg.Storage.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, cfg, log)

	session, err := signIn(ctx, services)
	if err != nil {
		log.Fatal().Err(err).Msg("sign in failed")
	}
	log.Info().Int64("user_id", session.UserID).Str("login", session.Login).Msg("signed in")

	state, err := services.ViewStateSync.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("view state loaded from local fallback")
	}
	log.Info().
		Str("sort", string(state.SortOption)).
		Str("selected", state.SelectedActivityID).
		Msg("view state loaded")

	services.SyncJob.Start(ctx, cfg.Sync.AutoSyncInterval)

	<-ctx.Done()

	// flush whatever is still pending before the process exits
	flushCtx := context.Background()
	if _, err := services.ViewStateSync.SaveImmediately(flushCtx, models.ViewStateUpdate{}); err != nil {
		log.Error().Err(err).Msg("final view state flush failed")
	}

	services.SyncJob.Stop()
	log.Info().Msg("client shut down gracefully")
}

// signIn restores the persisted session, falling back to a fresh login with
// credentials from the DASH_LOGIN / DASH_PASSWORD environment variables when
// nobody is signed in yet.
func signIn(ctx context.Context, services *service.ClientServices) (models.Session, error) {
	session, err := services.SessionService.Restore(ctx)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, err
	}

	login, password := os.Getenv("DASH_LOGIN"), os.Getenv("DASH_PASSWORD")
	if login == "" || password == "" {
		return models.Session{}, errors.New("no stored session and no DASH_LOGIN/DASH_PASSWORD provided")
	}

	return services.SessionService.Login(ctx, login, password)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
