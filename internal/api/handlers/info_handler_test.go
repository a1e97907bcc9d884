// filepath: internal/api/handlers/info_handler_test.go
package handlers

import (
	"moviecatalog/internal/models"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetInfo(t *testing.T) {
	testInfo := models.Info{
		ServiceName: "Movie Catalog API",
		Version:     "v1.2.3-test",
		UptimeSince: time.Now().UTC().Truncate(time.Second),
		MovieCount:  4,
		ThemeCount:  9,
	}

	h := newTestHandlers()
	h.Info.On("GetInfo").Return(testInfo)

	req, err := http.NewRequest("GET", "/api/info", nil)
	assert.NoError(t, err)
	rr := httptest.NewRecorder()

	h.GetInfo(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var response models.Info
	decodeBody(t, rr, &response)
	assert.Equal(t, "Movie Catalog API", response.ServiceName)
	assert.Equal(t, 4, response.MovieCount)
	h.Info.AssertExpectations(t)
}

func TestHealthCheck(t *testing.T) {
	rr := httptest.NewRecorder()
	HealthCheck(rr, httptest.NewRequest("GET", "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK\n", rr.Body.String())
}
