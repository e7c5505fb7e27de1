package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/Armory_Go/docs"
	"github.com/osse101/Armory_Go/internal/bootstrap"
	"github.com/osse101/Armory_Go/internal/config"
	"github.com/osse101/Armory_Go/internal/database"
	"github.com/osse101/Armory_Go/internal/server"
)

const shutdownTimeout = 15 * time.Second

// @title Armory API
// @version 1.0
// @description Equipment catalog and crafting-dependency resolver.
// @BasePath /
func main() {
	if err := run(); err != nil {
		slog.Error("Armory exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.ValidateEnv(); err != nil {
		log.Printf("Environment check: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}

	if _, err := database.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return err
	}

	bus, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool, cfg)
	services := bootstrap.InitializeServices(cfg, repos, publisher)

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        bus,
		EventLogService: services.Eventlog,
		ItemCache:       repos.ItemCache,
	}); err != nil {
		dbPool.Close()
		return err
	}

	if _, err := bootstrap.SyncEquipmentCatalog(ctx, services.Equipment); err != nil {
		dbPool.Close()
		return err
	}

	jobs := bootstrap.StartBackgroundJobs(cfg, services.Equipment, services.Eventlog)

	srv := server.NewServer(server.Options{
		Port:              cfg.Port,
		ResolveTimeout:    cfg.ResolveTimeout,
		TrustedProxies:    cfg.TrustedProxies,
		RateLimitRequests: cfg.RateLimitRequests,
		RateLimitWindow:   cfg.RateLimitWindow,
	}, dbPool, services)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		Jobs:               jobs,
		ResilientPublisher: publisher,
		DBPool:             dbPool,
	})

	return runErr
}
