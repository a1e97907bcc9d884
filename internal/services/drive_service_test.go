// filepath: internal/services/drive_service_test.go
package services

import (
	"io"
	"moviecatalog/internal/config"
	"moviecatalog/internal/metrics"
	"moviecatalog/internal/repository"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrapeMetrics(t *testing.T, m *metrics.Metrics) string {
	t.Helper()
	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(body)
}

func setupDriveService(t *testing.T, roots []string) *driveService {
	t.Helper()
	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "catalog.db")},
		Scan:     config.ScanConfig{Roots: roots},
	}
	repo, err := repository.NewRepository(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	require.NoError(t, repo.EnsureSchemaBootstrapped())

	m, err := metrics.New()
	require.NoError(t, err)
	return NewDriveService(cfg, repo, m)
}

func TestDriveService_ListDrives_NoMounts(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "plain"), 0o755))
	svc := setupDriveService(t, []string{root, filepath.Join(root, "missing")})

	drives := svc.ListDrives()
	assert.NotNil(t, drives)
	assert.Empty(t, drives)
}

func TestDriveService_ScanPath(t *testing.T) {
	svc := setupDriveService(t, nil)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.mkv"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.txt"), []byte("x"), 0o644))

	files, err := svc.ScanPath(root)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a", files[0].Title)

	files, err = svc.ScanPath(filepath.Join(root, "nope"))
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = svc.ScanPath("  ")
	assert.ErrorIs(t, err, ErrValidation)

	assert.Contains(t, scrapeMetrics(t, svc.Metrics), `moviecatalog_scan_errors_total{kind="directory"} 1`)
}

func TestDriveService_RecordAndHistory(t *testing.T) {
	svc := setupDriveService(t, []string{t.TempDir()})

	drives, err := svc.RecordDrives()
	require.NoError(t, err)
	assert.Empty(t, drives)

	history, err := svc.DriveHistory()
	require.NoError(t, err)
	assert.NotNil(t, history)
	assert.Empty(t, history)
}
