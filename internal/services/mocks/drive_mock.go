// filepath: internal/services/mocks/drive_mock.go
package mocks

import (
	"moviecatalog/internal/models"
	"moviecatalog/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockDriveService is a mock implementation of services.DriveService
type MockDriveService struct {
	mock.Mock
}

var _ services.DriveService = (*MockDriveService)(nil)

func (m *MockDriveService) ListDrives() []models.DriveInfo {
	args := m.Called()
	return args.Get(0).([]models.DriveInfo)
}

func (m *MockDriveService) ScanPath(path string) ([]models.ScannedFile, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ScannedFile), args.Error(1)
}

func (m *MockDriveService) RecordDrives() ([]models.DriveInfo, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.DriveInfo), args.Error(1)
}

func (m *MockDriveService) DriveHistory() ([]models.ExternalDrive, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ExternalDrive), args.Error(1)
}
