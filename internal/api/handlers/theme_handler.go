// filepath: internal/api/handlers/theme_handler.go
package handlers

import (
	"errors"
	"fmt"
	"moviecatalog/internal/models"
	"moviecatalog/internal/services"
	"net/http"
)

const themesRedirect = "/themes"

// @Summary List themes
// @Tags themes
// @Produce  json
// @Success 200 {array} models.Theme
// @Failure 500 {object} ErrorResponse "Failed to retrieve themes"
// @Router /themes [get]
func (h *Handlers) ListThemes(w http.ResponseWriter, r *http.Request) {
	themes, err := h.Catalog.ListThemes()
	if err != nil {
		respondWithServiceError(w, err, "", "Failed to retrieve themes.")
		return
	}
	if themes == nil {
		themes = []models.Theme{}
	}
	respondWithJSON(w, http.StatusOK, themes)
}

// @Summary Add a theme
// @Tags themes
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param   name         formData  string  true   "Theme name"
// @Param   description  formData  string  false  "Description"
// @Param   color        formData  string  false  "Hex color, defaults to #667eea"
// @Success 201 {object} models.Theme
// @Failure 400 {object} ErrorResponse "Missing name or invalid color"
// @Failure 409 {object} ErrorResponse "Theme already exists"
// @Failure 500 {object} ErrorResponse "Failed to add theme"
// @Router /themes [post]
func (h *Handlers) CreateTheme(w http.ResponseWriter, r *http.Request) {
	fields, err := parseThemeCreate(r)
	if err != nil {
		respondWithFormError(w, err)
		return
	}

	theme, err := h.Catalog.AddTheme(fields)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			h.Flash.Add(w, r, FlashError, "Theme already exists!")
		}
		respondWithServiceError(w, err, "", "Failed to add theme.")
		return
	}

	h.audit(r, "THEME_CREATE", fmt.Sprintf("theme:%d", theme.ID), map[string]interface{}{"name": theme.Name})
	h.Flash.Add(w, r, FlashSuccess, "Theme added successfully!")
	respondWithJSON(w, http.StatusCreated, theme)
}

// @Summary Delete a theme
// @Description Deletes a theme. Movies that used it keep existing without a theme.
// @Tags themes
// @Produce  json
// @Param   id  path  int  true  "Theme ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid theme ID"
// @Failure 404 {object} ErrorResponse "Theme not found"
// @Failure 500 {object} ErrorResponse "Failed to delete theme"
// @Router /themes/{id} [delete]
func (h *Handlers) DeleteTheme(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid theme ID")
		return
	}

	if err := h.Catalog.DeleteTheme(id); err != nil {
		respondWithServiceError(w, err, themesRedirect, "Failed to delete theme.")
		return
	}

	h.audit(r, "THEME_DELETE", fmt.Sprintf("theme:%d", id), nil)
	h.Flash.Add(w, r, FlashSuccess, "Theme deleted successfully!")
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Theme deleted successfully"})
}

// @Summary Movies of a theme
// @Description Returns the theme with the full movie list ordered by title. The list is not filtered by theme.
// @Tags themes
// @Produce  json
// @Param   id  path  int  true  "Theme ID"
// @Success 200 {object} models.ThemeMovies
// @Failure 400 {object} ErrorResponse "Invalid theme ID"
// @Failure 404 {object} ErrorResponse "Theme not found"
// @Router /themes/{id}/movies [get]
func (h *Handlers) MoviesByTheme(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid theme ID")
		return
	}

	result, err := h.Catalog.MoviesByTheme(id)
	if err != nil {
		respondWithServiceError(w, err, themesRedirect, "Failed to retrieve theme.")
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
