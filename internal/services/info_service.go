// filepath: internal/services/info_service.go
package services

import (
	"moviecatalog/internal/logging"
	"moviecatalog/internal/models"
	"moviecatalog/internal/repository"
	"time"
)

var _ InfoService = (*infoService)(nil)

type infoService struct {
	Repo      *repository.Repository
	Version   string
	StartTime time.Time
}

// NewInfoService creates a new InfoService.
func NewInfoService(repo *repository.Repository, version string, startTime time.Time) *infoService {
	return &infoService{
		Repo:      repo,
		Version:   version,
		StartTime: startTime,
	}
}

// GetInfo retrieves the application information. Count failures are logged and reported as zero.
func (s *infoService) GetInfo() models.Info {
	info := models.Info{
		ServiceName: "Movie Catalog API",
		Version:     s.Version,
		UptimeSince: s.StartTime,
	}

	movies, err := s.Repo.CountMovies()
	if err != nil {
		logging.Log.Errorf("InfoService: failed to count movies: %v", err)
	}
	themes, err := s.Repo.CountThemes()
	if err != nil {
		logging.Log.Errorf("InfoService: failed to count themes: %v", err)
	}
	info.MovieCount = movies
	info.ThemeCount = themes
	return info
}
