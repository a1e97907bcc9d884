// filepath: internal/cli/server.go
package cli

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"moviecatalog/internal/api"
	"moviecatalog/internal/api/handlers"
	"moviecatalog/internal/audit"
	"moviecatalog/internal/config"
	"moviecatalog/internal/housekeeping"
	"moviecatalog/internal/logging"
	"moviecatalog/internal/metrics"
	"moviecatalog/internal/repository"
	"moviecatalog/internal/services"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/securecookie"
)

// ensureSecret generates and persists the session signing key when none is configured.
func ensureSecret(c *config.Config, path string) error {
	if c.Secret != "" {
		return nil
	}

	logging.Log.Info("Generating new random session secret...")
	key := securecookie.GenerateRandomKey(32)
	if key == nil {
		return errors.New("failed to generate session secret")
	}
	c.Secret = hex.EncodeToString(key)

	if err := config.SaveConfig(path, c); err != nil {
		logging.Log.Warnf("Failed to save new session secret to %s: %v", path, err)
	} else {
		logging.Log.Infof("New session secret saved to %s.", path)
	}
	return nil
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	if err := ensureSecret(cfg, cfgFile); err != nil {
		return err
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repository: %w", err)
	}
	defer repo.Close()

	// --- Conditional Auto-migrate on startup ---
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		logging.Log.Errorf("Failed to bootstrap database: %v", err)
		return err
	}

	if err := repo.ValidateSchema(); err != nil {
		logging.Log.Error("---------------------------------------------------------------")
		logging.Log.Errorf("CRITICAL DATABASE ERROR: %v", err)
		logging.Log.Error("---------------------------------------------------------------")
		return err
	}

	m, err := metrics.New()
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	// Service Initialization
	driveService := services.NewDriveService(cfg, repo, m)
	catalogService := services.NewCatalogService(repo, driveService)
	infoService := services.NewInfoService(repo, Version, StartTime)

	if err := catalogService.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize catalog: %w", err)
	}

	var housekeepingService *housekeeping.Service
	if cfg.RecordInterval > 0 {
		housekeepingService = housekeeping.NewService(housekeeping.Dependencies{
			Drives:    driveService,
			History:   repo,
			Retention: cfg.HistoryRetention,
		}, cfg.RecordInterval)
		housekeepingService.Start()
		// No defer stop here, we stop explicitly during graceful shutdown
	}

	h := handlers.NewHandlers(
		infoService,
		catalogService,
		driveService,
		handlers.NewFlashStore(cfg.Secret),
		audit.NewLoggerAuditor(cfg.Logging.AuditEnabled),
		cfg,
	)

	r := api.SetupRouter(h, m, cfg)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.Log.Infof("Server starting on %s (Max Upload: %s, scan roots: %v)", serverAddr, cfg.Server.MaxUploadSize, cfg.Scan.Roots)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-stop
	logging.Log.Info("Shutting down server...")

	// Create a deadline for existing requests to complete (30 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop background services
	if housekeepingService != nil {
		housekeepingService.Stop()
	}

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
