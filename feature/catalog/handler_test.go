package catalog

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"release-manager/feature/catalog/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(cat *models.Catalog) *fiber.App {
	svc := &Service{logger: zap.NewNop(), catalog: cat}
	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func builtCatalog() *models.Catalog {
	return &models.Catalog{
		Project: models.Project{Name: "Test Project", TotalDays: DaysInYear},
		Releases: []models.Release{
			{Day: 1, Title: "First", Mood: models.MoodLight},
			{Day: 2, Title: "Second", Mood: models.MoodDark},
		},
		Stats: models.Stats{TotalReleases: 2, LightTracks: 1, DarkTracks: 1},
	}
}

func TestHandleGetCatalog(t *testing.T) {
	app := newTestApp(builtCatalog())

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cat models.Catalog
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &cat))
	assert.Equal(t, "Test Project", cat.Project.Name)
	assert.Len(t, cat.Releases, 2)
}

func TestHandleGetCatalog_NotBuilt(t *testing.T) {
	app := newTestApp(nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestHandleGetRelease(t *testing.T) {
	app := newTestApp(builtCatalog())

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/releases/2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var rel models.Release
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &rel))
	assert.Equal(t, "Second", rel.Title)
}

func TestHandleGetRelease_Invalid(t *testing.T) {
	app := newTestApp(builtCatalog())

	for _, path := range []string{"/catalog/releases/0", "/catalog/releases/366", "/catalog/releases/abc"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/releases/300", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "valid day with no release")
}

func TestHandleGetStats(t *testing.T) {
	app := newTestApp(builtCatalog())

	resp, err := app.Test(httptest.NewRequest("GET", "/catalog/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var stats models.Stats
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &stats))
	assert.Equal(t, 2, stats.TotalReleases)
}
