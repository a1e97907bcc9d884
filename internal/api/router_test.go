// filepath: internal/api/router_test.go
package api

import (
	"moviecatalog/internal/api/handlers"
	"moviecatalog/internal/config"
	"moviecatalog/internal/metrics"
	"moviecatalog/internal/models"
	"moviecatalog/internal/services/mocks"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routerFixture struct {
	router  *mux.Router
	catalog *mocks.MockCatalogService
	drives  *mocks.MockDriveService
	info    *mocks.MockInfoService
}

func newRouterFixture(t *testing.T, maxBytes int64) *routerFixture {
	t.Helper()
	cfg := &config.Config{Secret: "router-test-secret", MaxUploadBytes: maxBytes}
	m, err := metrics.New()
	require.NoError(t, err)

	f := &routerFixture{
		catalog: new(mocks.MockCatalogService),
		drives:  new(mocks.MockDriveService),
		info:    new(mocks.MockInfoService),
	}
	h := handlers.NewHandlers(f.info, f.catalog, f.drives, handlers.NewFlashStore(cfg.Secret), nil, cfg)
	f.router = SetupRouter(h, m, cfg)
	return f
}

func (f *routerFixture) do(method, target string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rr := httptest.NewRecorder()
	f.router.ServeHTTP(rr, req)
	return rr
}

func TestRouter_Health(t *testing.T) {
	f := newRouterFixture(t, 0)
	rr := f.do("GET", "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)

	id := rr.Header().Get(RequestIDHeader)
	_, err := ulid.ParseStrict(id)
	assert.NoError(t, err, "request id should be a ULID")
}

func TestRouter_MovieRoutes(t *testing.T) {
	f := newRouterFixture(t, 0)
	f.catalog.On("GetMovie", int64(5)).Return(&models.Movie{ID: 5, Title: "Pixote"}, nil)
	f.catalog.On("ToggleWatched", int64(5)).Return(true, true, nil)
	f.catalog.On("DeleteMovie", int64(5)).Return(nil)
	f.catalog.On("EditMovie", int64(5), mock.Anything).Return(&models.Movie{ID: 5, Title: "Pixote"}, nil)
	f.catalog.On("ListMoviesByTitle").Return([]models.Movie{}, nil)

	assert.Equal(t, http.StatusOK, f.do("GET", "/api/movies/5", "").Code)
	assert.Equal(t, http.StatusOK, f.do("POST", "/api/movies/5/watched", "").Code)
	assert.Equal(t, http.StatusOK, f.do("DELETE", "/api/movies/5", "").Code)
	assert.Equal(t, http.StatusOK, f.do("PUT", "/api/movies/5", url.Values{"title": {"Pixote"}}.Encode()).Code)
	assert.Equal(t, http.StatusOK, f.do("POST", "/api/movies/5", url.Values{"title": {"Pixote"}}.Encode()).Code)
	assert.Equal(t, http.StatusOK, f.do("GET", "/api/movies/by-title", "").Code)

	// Non-numeric ids do not match any route.
	assert.Equal(t, http.StatusNotFound, f.do("GET", "/api/movies/abc", "").Code)
	f.catalog.AssertExpectations(t)
}

func TestRouter_ThemeAndDriveRoutes(t *testing.T) {
	f := newRouterFixture(t, 0)
	f.catalog.On("ListThemes").Return([]models.Theme{}, nil)
	f.catalog.On("MoviesByTheme", int64(2)).Return(&models.ThemeMovies{}, nil)
	f.catalog.On("DeleteTheme", int64(2)).Return(nil)
	f.drives.On("ListDrives").Return([]models.DriveInfo{})
	f.drives.On("DriveHistory").Return([]models.ExternalDrive{}, nil)
	f.drives.On("ScanPath", "/media/usb/films").Return([]models.ScannedFile{}, nil)

	assert.Equal(t, http.StatusOK, f.do("GET", "/api/themes", "").Code)
	assert.Equal(t, http.StatusOK, f.do("GET", "/api/themes/2/movies", "").Code)
	assert.Equal(t, http.StatusOK, f.do("DELETE", "/api/themes/2", "").Code)
	assert.Equal(t, http.StatusOK, f.do("GET", "/api/drives", "").Code)
	assert.Equal(t, http.StatusOK, f.do("GET", "/api/drives/history", "").Code)
	assert.Equal(t, http.StatusOK, f.do("GET", "/api/scan/media/usb/films", "").Code)
	assert.Equal(t, http.StatusOK, f.do("GET", "/api/scan?path=/media/usb/films", "").Code)

	f.drives.AssertNumberOfCalls(t, "ScanPath", 2)
}

func TestRouter_BodyLimit(t *testing.T) {
	f := newRouterFixture(t, 64)
	body := url.Values{"title": {strings.Repeat("x", 200)}}.Encode()

	rr := f.do("POST", "/api/movies", body)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	f.catalog.AssertNotCalled(t, "AddMovie", mock.Anything)
}

func TestRouter_Metrics(t *testing.T) {
	f := newRouterFixture(t, 0)
	f.info.On("GetInfo").Return(models.Info{ServiceName: "Movie Catalog API"})
	f.do("GET", "/api/info", "")

	rr := f.do("GET", "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `moviecatalog_http_requests_total{method="GET",route="/api/info",status_code="200"} 1`)
}
