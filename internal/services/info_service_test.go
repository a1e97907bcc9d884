// filepath: internal/services/info_service_test.go
package services

import (
	"moviecatalog/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoService_GetInfo(t *testing.T) {
	catalog, repo := setupIntegrationTest(t)
	_, err := catalog.AddMovie(models.MovieCreate{Title: "Pixote"})
	require.NoError(t, err)

	start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	info := NewInfoService(repo, "1.2.3", start).GetInfo()

	assert.Equal(t, "Movie Catalog API", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, start, info.UptimeSince)
	assert.Equal(t, 1, info.MovieCount)
	assert.Equal(t, 9, info.ThemeCount)
}
