// filepath: internal/api/handlers/movie_handler.go
package handlers

import (
	"errors"
	"fmt"
	"moviecatalog/internal/logging"
	"moviecatalog/internal/models"
	"moviecatalog/internal/services"
	"net/http"
)

const moviesRedirect = "/movies"

// @Summary List movies with their theme
// @Description Lists every movie, newest first, with the name and color of its theme.
// @Tags movies
// @Produce  json
// @Success 200 {array} models.MovieWithTheme "Returns an empty array if there are no movies"
// @Failure 500 {object} ErrorResponse "Failed to retrieve movies"
// @Router /movies [get]
func (h *Handlers) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.Catalog.ListMoviesWithTheme()
	if err != nil {
		respondWithServiceError(w, err, "", "Failed to retrieve movies.")
		return
	}
	if movies == nil {
		movies = []models.MovieWithTheme{}
	}
	respondWithJSON(w, http.StatusOK, movies)
}

// @Summary List movies by title
// @Description Lists every movie ordered alphabetically by title.
// @Tags movies
// @Produce  json
// @Success 200 {array} models.Movie
// @Failure 500 {object} ErrorResponse "Failed to retrieve movies"
// @Router /movies/by-title [get]
func (h *Handlers) ListMoviesByTitle(w http.ResponseWriter, r *http.Request) {
	movies, err := h.Catalog.ListMoviesByTitle()
	if err != nil {
		respondWithServiceError(w, err, "", "Failed to retrieve movies.")
		return
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	respondWithJSON(w, http.StatusOK, movies)
}

// @Summary Add a movie
// @Description Adds a movie from the minimal field set. File path, source drive and theme are set by a later edit.
// @Tags movies
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param   title        formData  string  true   "Title"
// @Param   year         formData  int     false  "Release year"
// @Param   genre        formData  string  false  "Genre"
// @Param   director     formData  string  false  "Director"
// @Param   description  formData  string  false  "Description"
// @Param   rating       formData  number  false  "Rating"
// @Param   duration     formData  int     false  "Duration in minutes"
// @Success 201 {object} models.Movie
// @Failure 400 {object} ErrorResponse "Missing title or malformed number"
// @Failure 413 {object} ErrorResponse "Body exceeds max_upload_size"
// @Failure 500 {object} ErrorResponse "Failed to add movie"
// @Router /movies [post]
func (h *Handlers) CreateMovie(w http.ResponseWriter, r *http.Request) {
	fields, err := parseMovieCreate(r)
	if err != nil {
		respondWithFormError(w, err)
		return
	}

	movie, err := h.Catalog.AddMovie(fields)
	if err != nil {
		respondWithServiceError(w, err, "", "Failed to add movie.")
		return
	}

	h.audit(r, "MOVIE_CREATE", fmt.Sprintf("movie:%d", movie.ID), map[string]interface{}{"title": movie.Title})
	h.Flash.Add(w, r, FlashSuccess, "Movie added successfully!")
	respondWithJSON(w, http.StatusCreated, movie)
}

// @Summary Get a movie
// @Tags movies
// @Produce  json
// @Param   id  path  int  true  "Movie ID"
// @Success 200 {object} models.Movie
// @Failure 400 {object} ErrorResponse "Invalid movie ID"
// @Failure 404 {object} ErrorResponse "Movie not found"
// @Router /movies/{id} [get]
func (h *Handlers) GetMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	movie, err := h.Catalog.GetMovie(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.Flash.Add(w, r, FlashError, "Movie not found!")
		}
		respondWithServiceError(w, err, moviesRedirect, "Failed to retrieve movie.")
		return
	}
	respondWithJSON(w, http.StatusOK, movie)
}

// @Summary Edit a movie
// @Description Overwrites every field of a movie. Fields left out of the form are cleared.
// @Tags movies
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param   id            path      int     true   "Movie ID"
// @Param   title         formData  string  true   "Title"
// @Param   year          formData  int     false  "Release year"
// @Param   genre         formData  string  false  "Genre"
// @Param   director      formData  string  false  "Director"
// @Param   description   formData  string  false  "Description"
// @Param   file_path     formData  string  false  "Path of the video file"
// @Param   poster_path   formData  string  false  "Path of the poster image"
// @Param   source_drive  formData  string  false  "Drive holding the file"
// @Param   rating        formData  number  false  "Rating"
// @Param   duration      formData  int     false  "Duration in minutes"
// @Param   theme_id      formData  int     false  "Theme ID"
// @Success 200 {object} models.Movie
// @Failure 400 {object} ErrorResponse "Invalid input or unknown theme"
// @Failure 404 {object} ErrorResponse "Movie not found"
// @Failure 500 {object} ErrorResponse "Failed to update movie"
// @Router /movies/{id} [put]
func (h *Handlers) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	fields, err := parseMovieUpdate(r)
	if err != nil {
		respondWithFormError(w, err)
		return
	}

	movie, err := h.Catalog.EditMovie(id, fields)
	if err != nil {
		respondWithServiceError(w, err, moviesRedirect, "Failed to update movie.")
		return
	}

	h.audit(r, "MOVIE_UPDATE", fmt.Sprintf("movie:%d", id), map[string]interface{}{"title": movie.Title})
	h.Flash.Add(w, r, FlashSuccess, "Movie updated successfully!")
	respondWithJSON(w, http.StatusOK, movie)
}

// @Summary Delete a movie
// @Description Deletes a movie. Deleting an unknown ID succeeds.
// @Tags movies
// @Produce  json
// @Param   id  path  int  true  "Movie ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "Invalid movie ID"
// @Failure 500 {object} ErrorResponse "Failed to delete movie"
// @Router /movies/{id} [delete]
func (h *Handlers) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	if err := h.Catalog.DeleteMovie(id); err != nil {
		respondWithServiceError(w, err, "", "Failed to delete movie.")
		return
	}

	logging.Log.Infof("Movie %d deleted", id)
	h.audit(r, "MOVIE_DELETE", fmt.Sprintf("movie:%d", id), nil)
	h.Flash.Add(w, r, FlashSuccess, "Movie deleted successfully!")
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Movie deleted successfully"})
}

// @Summary Toggle the watched flag
// @Description Flips the watched flag and returns the new value. An unknown ID reports false.
// @Tags movies
// @Produce  json
// @Param   id  path  int  true  "Movie ID"
// @Success 200 {object} WatchedResponse
// @Failure 400 {object} ErrorResponse "Invalid movie ID"
// @Failure 500 {object} ErrorResponse "Failed to update movie"
// @Router /movies/{id}/watched [post]
func (h *Handlers) ToggleWatched(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid movie ID")
		return
	}

	watched, found, err := h.Catalog.ToggleWatched(id)
	if err != nil {
		respondWithServiceError(w, err, "", "Failed to update movie.")
		return
	}
	if found {
		h.audit(r, "MOVIE_WATCHED", fmt.Sprintf("movie:%d", id), map[string]interface{}{"watched": watched})
	}
	respondWithJSON(w, http.StatusOK, WatchedResponse{Success: true, Watched: watched})
}
