// filepath: internal/api/handlers/main.go
package handlers

import (
	"moviecatalog/internal/config"
	"moviecatalog/internal/services"
	"net/http"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	Info    services.InfoService
	Catalog services.CatalogService
	Drives  services.DriveService
	Flash   *FlashStore
	Auditor services.Auditor

	Cfg *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	info services.InfoService,
	catalog services.CatalogService,
	drives services.DriveService,
	flash *FlashStore,
	auditor services.Auditor,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Info:    info,
		Catalog: catalog,
		Drives:  drives,
		Flash:   flash,
		Auditor: auditor,
		Cfg:     cfg,
	}
}

// audit forwards a mutation to the auditor, if one is configured.
func (h *Handlers) audit(r *http.Request, action, resource string, details map[string]interface{}) {
	if h.Auditor == nil {
		return
	}
	h.Auditor.Log(r.Context(), action, r.RemoteAddr, resource, details)
}
