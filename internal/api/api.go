// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/JaimeStill/loom/internal/config"
	"github.com/JaimeStill/loom/internal/infrastructure"
	"github.com/JaimeStill/loom/pkg/middleware"
	"github.com/JaimeStill/loom/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
// The fabrication engine's initial generation run is registered as a startup
// hook so the mock tool surface is populated once the service is ready.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(cfg, runtime)

	infra.Lifecycle.OnStartup(func() {
		if err := domain.Fabrication.Start(infra.Lifecycle.Context()); err != nil {
			runtime.Logger.Error("initial fabrication run failed", "error", err)
		}
	})

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
