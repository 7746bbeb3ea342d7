// Package app contains the application setup for the OrderDesk service.
package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/odmng/orderdesk/internal/auth"
	"github.com/odmng/orderdesk/internal/config"
	"github.com/odmng/orderdesk/internal/service"
	"github.com/odmng/orderdesk/internal/store"
	"github.com/odmng/orderdesk/internal/transport/rest"
	"github.com/odmng/orderdesk/pkg/server"
)

type Dependencies struct {
	Store       store.Store
	DeskService service.DeskService
	Sessions    auth.SessionService
	Logger      *slog.Logger
}

// SetupDependencies wires the store, services and session gate together.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	entityStore := store.NewInMemoryStore()
	deskService := service.NewService(entityStore)
	sessions := auth.NewService(entityStore, cfg.Auth.LoginDelay, cfg.Seed.Delay, logger)

	return &Dependencies{
		Store:       entityStore,
		DeskService: deskService,
		Sessions:    sessions,
		Logger:      logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the OrderDesk service.
// Also used by tests to build the full handler chain without a listener.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the OrderDesk service.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	handler := rest.NewHandler(deps.DeskService, deps.Sessions, deps.Logger)
	handler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures the HTTP server for the OrderDesk service.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {
	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
