// Package app is the composition root: it owns the configuration, the
// database handle and the HTTP server for one process lifetime.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kutbudev/listkeeper/api"
	"github.com/kutbudev/listkeeper/api/handlers"
	"github.com/kutbudev/listkeeper/pkg/config"
	"github.com/kutbudev/listkeeper/pkg/repository"
)

// App is the explicitly constructed application context shared by handlers.
type App struct {
	Config *config.Config
	DB     *repository.Database
	Lists  *repository.ListRepository
}

// New opens the database described by cfg. Close must be called when done.
func New(cfg *config.Config) (*App, error) {
	db, err := repository.Open(cfg.Database, cfg.Debug)
	if err != nil {
		return nil, err
	}
	return &App{
		Config: cfg,
		DB:     db,
		Lists:  repository.NewListRepository(db),
	}, nil
}

// Migrate creates the schema.
func (a *App) Migrate(ctx context.Context) error {
	return a.DB.Migrate(ctx)
}

// Router builds the HTTP handler tree.
func (a *App) Router() (http.Handler, error) {
	gin.SetMode(a.Config.Server.Mode)
	return api.NewRouter(handlers.New(a.Lists, a.DB), api.Options{AccessLog: os.Stdout})
}

// Serve runs the HTTP server until ctx is cancelled, then shuts down
// gracefully within the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	if a.Config.Database.AutoMigrate {
		if err := a.Migrate(ctx); err != nil {
			return err
		}
	} else if err := a.DB.CheckSchema(ctx); err != nil {
		return err
	}

	handler, err := a.Router()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         a.Config.Server.Address(),
		Handler:      handler,
		ReadTimeout:  a.Config.Server.ReadTimeout,
		WriteTimeout: a.Config.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listkeeper listening on %s (driver=%s)", srv.Addr, a.DB.Driver())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.DB.Close()
}
