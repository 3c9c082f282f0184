package api

import (
	"net/http"

	"github.com/JaimeStill/loom/internal/config"
	"github.com/JaimeStill/loom/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Documents.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Requirements.Handler().Routes(),
		domain.Fabrication.Handler().Routes(),
	)
}
