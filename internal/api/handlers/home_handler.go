// filepath: internal/api/handlers/home_handler.go
package handlers

import (
	"net/http"
)

// @Summary Home view
// @Description Returns the ten most recent movies, all themes and a fresh drive scan.
// @Tags home
// @Produce  json
// @Success 200 {object} models.HomeView
// @Failure 500 {object} ErrorResponse "Failed to build home view"
// @Router /home [get]
func (h *Handlers) GetHome(w http.ResponseWriter, r *http.Request) {
	home, err := h.Catalog.Home()
	if err != nil {
		respondWithServiceError(w, err, "", "Failed to build home view.")
		return
	}
	respondWithJSON(w, http.StatusOK, home)
}

// @Summary Pop flash messages
// @Description Returns and clears the messages queued by previous mutations.
// @Tags home
// @Produce  json
// @Success 200 {array} models.Flash
// @Router /flashes [get]
func (h *Handlers) GetFlashes(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Flash.Pop(w, r))
}
