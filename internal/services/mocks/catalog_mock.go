// filepath: internal/services/mocks/catalog_mock.go
package mocks

import (
	"moviecatalog/internal/models"
	"moviecatalog/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of services.CatalogService
type MockCatalogService struct {
	mock.Mock
}

var _ services.CatalogService = (*MockCatalogService)(nil)

func (m *MockCatalogService) Initialize() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockCatalogService) Home() (*models.HomeView, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.HomeView), args.Error(1)
}

func (m *MockCatalogService) ListMoviesByTitle() ([]models.Movie, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockCatalogService) ListRecentMovies(limit int) ([]models.Movie, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockCatalogService) ListMoviesWithTheme() ([]models.MovieWithTheme, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MovieWithTheme), args.Error(1)
}

func (m *MockCatalogService) GetMovie(id int64) (*models.Movie, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockCatalogService) AddMovie(fields models.MovieCreate) (*models.Movie, error) {
	args := m.Called(fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockCatalogService) EditMovie(id int64, fields models.MovieUpdate) (*models.Movie, error) {
	args := m.Called(id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockCatalogService) DeleteMovie(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCatalogService) ToggleWatched(id int64) (bool, bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Bool(1), args.Error(2)
}

func (m *MockCatalogService) ListThemes() ([]models.Theme, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Theme), args.Error(1)
}

func (m *MockCatalogService) AddTheme(fields models.ThemeCreate) (*models.Theme, error) {
	args := m.Called(fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Theme), args.Error(1)
}

func (m *MockCatalogService) DeleteTheme(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCatalogService) MoviesByTheme(themeID int64) (*models.ThemeMovies, error) {
	args := m.Called(themeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ThemeMovies), args.Error(1)
}
