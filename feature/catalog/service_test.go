package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"release-manager/core/server"
	"release-manager/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func newBuildService(t *testing.T, dataDir string) *Service {
	t.Helper()
	cfg := Config{
		ManifestPath: filepath.Join(dataDir, "manifest.json"),
		DataDir:      dataDir,
	}
	srvCfg := server.Config{
		ProjectName: "Test Project",
		StartDate:   "2026-01-01",
	}
	return NewService(cfg, srvCfg, nil, "releases", nil, zap.NewNop())
}

// A manifest plus the complete dataset alone builds a full catalog; the
// missing optional datasets only degrade enrichment.
func TestService_Build(t *testing.T) {
	dataDir := t.TempDir()
	writeJSON(t, filepath.Join(dataDir, "manifest.json"), manifestOf(
		entry("january", 1, "First", "wav"),
		entry("january", 2, "Second", "mp3"),
	))
	writeJSON(t, filepath.Join(dataDir, "complete.json"), map[string]any{
		"songs": []map[string]any{
			{"id": "s1", "title": "First", "valence": 0.2, "energy": 0.6},
		},
	})

	svc := newBuildService(t, dataDir)
	cat, err := svc.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Test Project", cat.Project.Name)
	assert.Equal(t, DaysInYear, cat.Project.TotalDays)
	require.Len(t, cat.Releases, 2)
	assert.Equal(t, "s1", cat.Releases[0].ID)
	assert.Equal(t, models.MoodDark, cat.Releases[0].Mood)
	assert.Equal(t, "day-002", cat.Releases[1].ID, "unmatched entry still gets a release")
	assert.Equal(t, 2, cat.Stats.TotalReleases)
	assert.NotNil(t, cat.Announcements)
	assert.NotNil(t, cat.UpcomingMilestones)

	rel, ok := svc.ReleaseByDay(2)
	require.True(t, ok)
	assert.Equal(t, "Second", rel.Title)

	_, ok = svc.ReleaseByDay(300)
	assert.False(t, ok)
}

func TestService_Build_MissingManifestFatal(t *testing.T) {
	svc := newBuildService(t, t.TempDir())
	_, err := svc.Build(context.Background())
	assert.Error(t, err)
}

func TestService_Build_MissingCompleteFatal(t *testing.T) {
	dataDir := t.TempDir()
	writeJSON(t, filepath.Join(dataDir, "manifest.json"), manifestOf(
		entry("january", 1, "First", "wav"),
	))

	svc := newBuildService(t, dataDir)
	_, err := svc.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "complete dataset unavailable")
}

func TestService_WriteArtifact(t *testing.T) {
	dataDir := t.TempDir()
	writeJSON(t, filepath.Join(dataDir, "manifest.json"), manifestOf(
		entry("january", 1, "First", "wav"),
	))
	writeJSON(t, filepath.Join(dataDir, "complete.json"), map[string]any{
		"songs": []map[string]any{{"title": "First"}},
	})

	svc := newBuildService(t, dataDir)
	_, err := svc.Build(context.Background())
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "public", "releases.json")
	require.NoError(t, svc.WriteArtifact(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var cat models.Catalog
	require.NoError(t, json.Unmarshal(data, &cat))
	assert.Len(t, cat.Releases, 1)
}

func TestService_WriteArtifact_NotBuilt(t *testing.T) {
	svc := newBuildService(t, t.TempDir())
	assert.Error(t, svc.WriteArtifact(filepath.Join(t.TempDir(), "out.json")))
}
