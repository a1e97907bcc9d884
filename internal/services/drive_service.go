// filepath: internal/services/drive_service.go
package services

import (
	"fmt"
	"moviecatalog/internal/config"
	"moviecatalog/internal/logging"
	"moviecatalog/internal/metrics"
	"moviecatalog/internal/models"
	"moviecatalog/internal/repository"
	"moviecatalog/internal/scanner"
	"strings"
	"time"
)

var _ DriveService = (*driveService)(nil)

// driveService wraps the filesystem scanner. Results are computed fresh on every call.
type driveService struct {
	Repo    *repository.Repository
	Roots   []string
	Metrics *metrics.Metrics
}

// NewDriveService creates a new DriveService scanning the configured roots.
func NewDriveService(cfg *config.Config, repo *repository.Repository, m *metrics.Metrics) *driveService {
	return &driveService{
		Repo:    repo,
		Roots:   cfg.Scan.Roots,
		Metrics: m,
	}
}

// ListDrives enumerates the mounted drives under the scan roots.
func (s *driveService) ListDrives() []models.DriveInfo {
	start := time.Now()
	drives := scanner.ScanDrives(s.Roots, s.errorHandler("drives"))
	s.Metrics.ObserveDriveScan(len(drives), time.Since(start))
	return drives
}

// ScanPath lists the video files under path.
func (s *driveService) ScanPath(path string) ([]models.ScannedFile, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, newError(ErrValidation, "path is required")
	}

	start := time.Now()
	files := scanner.ScanVideoFiles(path, s.errorHandler("directory"))
	s.Metrics.ObserveDirectoryScan(len(files), time.Since(start))
	logging.Log.Debugf("DriveService: %d video files under '%s'", len(files), path)
	return files, nil
}

func (s *driveService) errorHandler(kind string) scanner.Option {
	return scanner.WithErrorHandler(func(error) {
		s.Metrics.ObserveScanError(kind)
	})
}

// RecordDrives scans the drives and stores one record per mount point.
func (s *driveService) RecordDrives() ([]models.DriveInfo, error) {
	drives := s.ListDrives()
	if _, err := s.Repo.RecordDrives(drives, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to record drives: %w", err)
	}
	return drives, nil
}

// DriveHistory lists the recorded drives.
func (s *driveService) DriveHistory() ([]models.ExternalDrive, error) {
	return s.Repo.ListDriveRecords()
}
