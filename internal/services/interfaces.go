// filepath: internal/services/interfaces.go
package services

import (
	"context"
	"moviecatalog/internal/models"
)

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// CatalogService defines the movie and theme operations offered to the presentation layer.
type CatalogService interface {
	// Initialize creates the schema on a fresh database and inserts the seed themes.
	Initialize() error
	Home() (*models.HomeView, error)

	ListMoviesByTitle() ([]models.Movie, error)
	ListRecentMovies(limit int) ([]models.Movie, error)
	ListMoviesWithTheme() ([]models.MovieWithTheme, error)
	GetMovie(id int64) (*models.Movie, error)
	AddMovie(fields models.MovieCreate) (*models.Movie, error)
	EditMovie(id int64, fields models.MovieUpdate) (*models.Movie, error)
	DeleteMovie(id int64) error
	ToggleWatched(id int64) (watched bool, found bool, err error)

	ListThemes() ([]models.Theme, error)
	AddTheme(fields models.ThemeCreate) (*models.Theme, error)
	DeleteTheme(id int64) error
	MoviesByTheme(themeID int64) (*models.ThemeMovies, error)
}

// DriveService defines the filesystem scan operations.
type DriveService interface {
	ListDrives() []models.DriveInfo
	ScanPath(path string) ([]models.ScannedFile, error)
	RecordDrives() ([]models.DriveInfo, error)
	DriveHistory() ([]models.ExternalDrive, error)
}

// Auditor records catalog mutations.
type Auditor interface {
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}
