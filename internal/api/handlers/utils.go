// filepath: internal/api/handlers/utils.go
package handlers

import (
	"errors"
	"fmt"
	"moviecatalog/internal/models"
	"moviecatalog/internal/shared"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// pathID reads the numeric {id} route variable.
func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", shared.ErrInvalidNumber, raw)
	}
	return id, nil
}

const maxMultipartMemory = 32 << 20

// errBodyTooLarge is reported when the body exceeds the configured upload limit.
var errBodyTooLarge = errors.New("request body too large")

// parseForm reads an urlencoded or multipart body into r.Form.
func parseForm(r *http.Request) error {
	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxMultipartMemory)
	} else {
		err = r.ParseForm()
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errBodyTooLarge
	}
	if err != nil {
		return fmt.Errorf("invalid form data: %w", err)
	}
	return nil
}

// parseMovieCreate turns the add-movie form into a typed field set.
// The title is trimmed. Blank numeric fields are absent; malformed ones are rejected.
func parseMovieCreate(r *http.Request) (models.MovieCreate, error) {
	if err := parseForm(r); err != nil {
		return models.MovieCreate{}, err
	}
	year, err := shared.ParseOptionalInt(r.FormValue("year"))
	if err != nil {
		return models.MovieCreate{}, fmt.Errorf("invalid year: %w", err)
	}
	rating, err := shared.ParseOptionalFloat(r.FormValue("rating"))
	if err != nil {
		return models.MovieCreate{}, fmt.Errorf("invalid rating: %w", err)
	}
	duration, err := shared.ParseOptionalInt(r.FormValue("duration"))
	if err != nil {
		return models.MovieCreate{}, fmt.Errorf("invalid duration: %w", err)
	}

	return models.MovieCreate{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Year:        year,
		Genre:       r.FormValue("genre"),
		Director:    r.FormValue("director"),
		Description: r.FormValue("description"),
		Rating:      rating,
		Duration:    duration,
	}, nil
}

// parseMovieUpdate turns the edit-movie form into the full field set.
// Fields missing from the form are cleared.
func parseMovieUpdate(r *http.Request) (models.MovieUpdate, error) {
	base, err := parseMovieCreate(r)
	if err != nil {
		return models.MovieUpdate{}, err
	}
	themeID, err := shared.ParseOptionalInt64(r.FormValue("theme_id"))
	if err != nil {
		return models.MovieUpdate{}, fmt.Errorf("invalid theme_id: %w", err)
	}

	return models.MovieUpdate{
		Title:       base.Title,
		Year:        base.Year,
		Genre:       base.Genre,
		Director:    base.Director,
		Description: base.Description,
		FilePath:    r.FormValue("file_path"),
		PosterPath:  r.FormValue("poster_path"),
		SourceDrive: r.FormValue("source_drive"),
		Rating:      base.Rating,
		Duration:    base.Duration,
		ThemeID:     themeID,
	}, nil
}

func parseThemeCreate(r *http.Request) (models.ThemeCreate, error) {
	if err := parseForm(r); err != nil {
		return models.ThemeCreate{}, err
	}
	return models.ThemeCreate{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Color:       r.FormValue("color"),
	}, nil
}

// respondWithFormError answers a body that could not be parsed.
func respondWithFormError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBodyTooLarge) {
		respondWithError(w, http.StatusRequestEntityTooLarge, err.Error())
		return
	}
	respondWithError(w, http.StatusBadRequest, err.Error())
}
