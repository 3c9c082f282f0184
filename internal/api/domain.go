package api

import (
	"github.com/JaimeStill/loom/internal/config"
	"github.com/JaimeStill/loom/internal/documents"
	"github.com/JaimeStill/loom/internal/fabrication"
	"github.com/JaimeStill/loom/internal/requirements"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Documents    documents.System
	Requirements requirements.System
	Fabrication  fabrication.System
}

// NewDomain creates all domain systems from the API runtime. Requirements
// is constructed first since both documents and fabrication depend on it.
func NewDomain(cfg *config.Config, runtime *Runtime) *Domain {
	reqsSystem := requirements.New(
		runtime.Database.Connection(),
		runtime.Logger,
		runtime.Pagination,
	)

	docsSystem := documents.New(
		runtime.Database.Connection(),
		runtime.Storage,
		reqsSystem,
		runtime.Logger,
		runtime.Pagination,
	)

	fabricationSystem := fabrication.New(
		reqsSystem,
		cfg.Generation,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Documents:    docsSystem,
		Requirements: reqsSystem,
		Fabrication:  fabricationSystem,
	}
}
