// filepath: internal/api/handlers/drive_handler.go
package handlers

import (
	"moviecatalog/internal/models"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gorilla/mux"
)

// @Summary List drives
// @Description Enumerates mounted drives under the configured scan roots. Computed on every call.
// @Tags drives
// @Produce  json
// @Success 200 {array} models.DriveInfo
// @Router /drives [get]
func (h *Handlers) ListDrives(w http.ResponseWriter, r *http.Request) {
	drives := h.Drives.ListDrives()
	if drives == nil {
		drives = []models.DriveInfo{}
	}
	respondWithJSON(w, http.StatusOK, drives)
}

// @Summary Recorded drives
// @Description Lists the drive records written by `moviecatalog scan drives --record` and the housekeeping worker.
// @Tags drives
// @Produce  json
// @Success 200 {array} models.ExternalDrive
// @Failure 500 {object} ErrorResponse "Failed to retrieve drive history"
// @Router /drives/history [get]
func (h *Handlers) DriveHistory(w http.ResponseWriter, r *http.Request) {
	drives, err := h.Drives.DriveHistory()
	if err != nil {
		respondWithServiceError(w, err, "", "Failed to retrieve drive history.")
		return
	}
	if drives == nil {
		drives = []models.ExternalDrive{}
	}
	respondWithJSON(w, http.StatusOK, drives)
}

// @Summary Scan a directory for video files
// @Description Recursively lists video files under a path. Unreadable paths yield an empty array.
// @Tags drives
// @Produce  json
// @Param   path  query  string  true  "Directory to scan"
// @Success 200 {array} models.ScannedFile
// @Failure 400 {object} ErrorResponse "Missing path"
// @Router /scan [get]
func (h *Handlers) ScanPath(w http.ResponseWriter, r *http.Request) {
	files, err := h.Drives.ScanPath(scanTarget(r))
	if err != nil {
		respondWithServiceError(w, err, "", "Failed to scan path.")
		return
	}
	if files == nil {
		files = []models.ScannedFile{}
	}
	respondWithJSON(w, http.StatusOK, files)
}

// scanTarget reads the directory from the query string or from the {path} route
// variable. The route form drops the leading slash, so it is restored.
func scanTarget(r *http.Request) string {
	if p := strings.TrimSpace(r.URL.Query().Get("path")); p != "" {
		return p
	}
	p := strings.TrimSpace(mux.Vars(r)["path"])
	if p == "" {
		return ""
	}
	return filepath.Clean("/" + p)
}
