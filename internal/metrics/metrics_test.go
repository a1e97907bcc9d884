// filepath: internal/metrics/metrics_test.go
package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveRequest(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.ObserveRequest(http.MethodGet, "/api/movies", http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, "/api/movies", http.StatusOK, 20*time.Millisecond)
	m.ObserveRequest(http.MethodPost, "/api/movies", http.StatusBadRequest, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/movies", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/movies", "400")))
}

func TestObserveScans(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.ObserveDriveScan(3, time.Millisecond)
	m.ObserveDirectoryScan(5, time.Millisecond)
	m.ObserveDirectoryScan(2, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.driveScansTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.drivesFound))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.directoryScans))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.videoFilesFound))
}

func TestObserveScanError(t *testing.T) {
	m, err := New()
	require.NoError(t, err)

	m.ObserveScanError("directory")
	m.ObserveScanError("directory")
	m.ObserveScanError("drives")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.scanErrors.WithLabelValues("directory")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scanErrors.WithLabelValues("drives")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m, err := New()
	require.NoError(t, err)
	m.ObserveDriveScan(1, time.Millisecond)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	body, _ := io.ReadAll(rr.Body)
	assert.Contains(t, string(body), "moviecatalog_drive_scans_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/", 200, time.Millisecond)
		m.ObserveDriveScan(1, time.Millisecond)
		m.ObserveDirectoryScan(1, time.Millisecond)
		m.ObserveScanError("drives")
	})

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
