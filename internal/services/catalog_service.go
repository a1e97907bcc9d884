// filepath: internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"
	"moviecatalog/internal/logging"
	"moviecatalog/internal/models"
	"moviecatalog/internal/repository"
	"moviecatalog/internal/shared"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// RecentMoviesLimit is the number of movies shown on the home view.
const RecentMoviesLimit = 10

var _ CatalogService = (*catalogService)(nil)

// defaultThemes are inserted on first start. Existing names are left untouched.
var defaultThemes = []models.ThemeCreate{
	{Name: "Ação", Description: "Filmes de ação e aventura", Color: "#ff6b6b"},
	{Name: "Comédia", Description: "Filmes de comédia e humor", Color: "#feca57"},
	{Name: "Drama", Description: "Dramas e filmes emocionantes", Color: "#48dbfb"},
	{Name: "Terror", Description: "Filmes de terror e suspense", Color: "#5f27cd"},
	{Name: "Ficção Científica", Description: "Sci-fi e fantasia", Color: "#00d2d3"},
	{Name: "Romance", Description: "Filmes românticos", Color: "#ff9ff3"},
	{Name: "Documentário", Description: "Documentários e educacionais", Color: "#54a0ff"},
	{Name: "Animação", Description: "Desenhos animados e anime", Color: "#5f27cd"},
	{Name: "Clássicos", Description: "Filmes clássicos antigos", Color: "#ddd"},
}

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// catalogService handles business logic for movies and themes.
type catalogService struct {
	Repo   *repository.Repository
	Drives DriveService
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo *repository.Repository, drives DriveService) *catalogService {
	return &catalogService{
		Repo:   repo,
		Drives: drives,
	}
}

// Initialize bootstraps the schema and seeds the default themes. Safe to call repeatedly.
func (s *catalogService) Initialize() error {
	if err := s.Repo.EnsureSchemaBootstrapped(); err != nil {
		return err
	}
	seeds := make([]models.ThemeCreate, len(defaultThemes))
	for i, t := range defaultThemes {
		t.Name = normalizeName(t.Name)
		seeds[i] = t
	}
	inserted, err := s.Repo.SeedThemes(seeds)
	if err != nil {
		return err
	}
	if inserted > 0 {
		logging.Log.Infof("CatalogService: seeded %d default themes", inserted)
	}
	return nil
}

// Home composes the landing view: recent movies, all themes and a fresh drive scan.
func (s *catalogService) Home() (*models.HomeView, error) {
	movies, err := s.Repo.ListMovies(repository.OrderByNewest, RecentMoviesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent movies: %w", err)
	}
	themes, err := s.Repo.ListThemes()
	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	return &models.HomeView{
		Movies: movies,
		Themes: themes,
		Drives: s.Drives.ListDrives(),
	}, nil
}

// === Movies ===

func (s *catalogService) ListMoviesByTitle() ([]models.Movie, error) {
	return s.Repo.ListMovies(repository.OrderByTitle, 0)
}

func (s *catalogService) ListRecentMovies(limit int) ([]models.Movie, error) {
	return s.Repo.ListMovies(repository.OrderByNewest, limit)
}

func (s *catalogService) ListMoviesWithTheme() ([]models.MovieWithTheme, error) {
	return s.Repo.ListMoviesWithTheme()
}

func (s *catalogService) GetMovie(id int64) (*models.Movie, error) {
	movie, err := s.Repo.GetMovie(id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, newError(ErrNotFound, "movie not found")
	}
	return movie, err
}

// AddMovie stores a movie from the minimal field set exactly as given. File path,
// source drive and theme are left empty until the movie is edited.
func (s *catalogService) AddMovie(fields models.MovieCreate) (*models.Movie, error) {
	if strings.TrimSpace(fields.Title) == "" {
		return nil, newError(ErrValidation, "title is required")
	}

	id, err := s.Repo.InsertMovie(fields)
	if err != nil {
		logging.Log.Errorf("CatalogService: failed to insert movie '%s': %v", fields.Title, err)
		return nil, err
	}
	logging.Log.Infof("CatalogService: movie %d added: %s", id, fields.Title)
	return s.Repo.GetMovie(id)
}

// EditMovie overwrites every field of an existing movie.
func (s *catalogService) EditMovie(id int64, fields models.MovieUpdate) (*models.Movie, error) {
	if strings.TrimSpace(fields.Title) == "" {
		return nil, newError(ErrValidation, "title is required")
	}

	if _, err := s.GetMovie(id); err != nil {
		return nil, err
	}

	if fields.ThemeID != nil {
		if _, err := s.Repo.GetTheme(*fields.ThemeID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, newError(ErrValidation, "theme %d does not exist", *fields.ThemeID)
			}
			return nil, err
		}
	}

	if err := s.Repo.UpdateMovie(id, fields); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, newError(ErrNotFound, "movie not found")
		}
		logging.Log.Errorf("CatalogService: failed to update movie %d: %v", id, err)
		return nil, err
	}
	return s.Repo.GetMovie(id)
}

// DeleteMovie removes a movie without checking that it exists.
func (s *catalogService) DeleteMovie(id int64) error {
	return s.Repo.DeleteMovie(id)
}

// ToggleWatched flips the watched flag and returns the new value.
// A missing movie is reported as not found and false, without an error.
func (s *catalogService) ToggleWatched(id int64) (bool, bool, error) {
	current, err := s.Repo.GetWatched(id)
	if errors.Is(err, shared.ErrNotFound) {
		logging.Log.Debugf("CatalogService: toggle watched on missing movie %d ignored", id)
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}

	next := !current
	if err := s.Repo.SetWatched(id, next); err != nil {
		return false, true, err
	}
	return next, true, nil
}

// === Themes ===

func (s *catalogService) ListThemes() ([]models.Theme, error) {
	return s.Repo.ListThemes()
}

// AddTheme validates and stores a new theme. Names are compared after NFC normalization.
func (s *catalogService) AddTheme(fields models.ThemeCreate) (*models.Theme, error) {
	name := normalizeName(fields.Name)
	if name == "" {
		return nil, newError(ErrValidation, "theme name is required")
	}

	color := strings.TrimSpace(fields.Color)
	if color == "" {
		color = models.DefaultThemeColor
	}
	if !hexColorPattern.MatchString(color) {
		return nil, newError(ErrValidation, "invalid color '%s': expected #rgb or #rrggbb", color)
	}

	theme, err := s.Repo.InsertTheme(name, strings.TrimSpace(fields.Description), color)
	if err != nil {
		if errors.Is(err, shared.ErrDuplicateName) {
			return nil, newError(ErrConflict, "theme already exists")
		}
		logging.Log.Errorf("CatalogService: failed to insert theme '%s': %v", name, err)
		return nil, err
	}
	logging.Log.Infof("CatalogService: theme %d added: %s", theme.ID, theme.Name)
	return theme, nil
}

// DeleteTheme removes a theme. Movies that referenced it become themeless.
func (s *catalogService) DeleteTheme(id int64) error {
	detached, err := s.Repo.DeleteTheme(id)
	if errors.Is(err, shared.ErrNotFound) {
		return newError(ErrNotFound, "theme not found")
	}
	if err != nil {
		return err
	}
	logging.Log.Infof("CatalogService: theme %d deleted, %d movies detached", id, detached)
	return nil
}

// MoviesByTheme returns the theme together with every movie ordered by title.
// The movie list is not filtered by the theme.
func (s *catalogService) MoviesByTheme(themeID int64) (*models.ThemeMovies, error) {
	theme, err := s.Repo.GetTheme(themeID)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, newError(ErrNotFound, "theme not found")
	}
	if err != nil {
		return nil, err
	}

	movies, err := s.Repo.ListMovies(repository.OrderByTitle, 0)
	if err != nil {
		return nil, err
	}
	return &models.ThemeMovies{Theme: *theme, Movies: movies}, nil
}

// normalizeName trims and NFC-normalizes a theme name.
func normalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
