package catalog

import (
	"testing"
	"time"

	"release-manager/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }
func sptr(v string) *string   { return &v }

func testStart(t *testing.T) time.Time {
	t.Helper()
	start, err := time.ParseInLocation("2006-01-02", "2026-01-01", time.Local)
	require.NoError(t, err)
	return start
}

func manifestOf(items ...models.ManifestEntry) *models.Manifest {
	return &models.Manifest{Version: ManifestVersion, Items: items}
}

func entry(month string, index int, title, ext string) models.ManifestEntry {
	return models.ManifestEntry{Month: month, Index: index, StorageTitle: title, Ext: ext}
}

// A manifest with no enrichment data at all still yields a complete release
// with neutral defaults.
func TestMerge_NoEnrichmentData(t *testing.T) {
	manifest := manifestOf(entry("january", 1, "Test Song", "wav"))

	releases := Merge(manifest, Sources{}, testStart(t))
	require.Len(t, releases, 1)

	r := releases[0]
	assert.Equal(t, 1, r.Day)
	assert.Equal(t, "2026-01-01", r.Date)
	assert.Equal(t, "Test Song", r.Title)
	assert.Equal(t, "01 - Test Song.wav", r.FileName)
	assert.Equal(t, "day-001", r.ID)
	assert.Equal(t, models.MoodLight, r.Mood, "default valence 0.5 is not dark")
	assert.Equal(t, 0.0, r.Energy)
	assert.Equal(t, 0.5, r.Valence)
	assert.Equal(t, "0:00", r.DurationFormatted)
	assert.Equal(t, []string{"poetry", "sonic", "narrative"}, r.Tags)
	assert.Equal(t, []string{}, r.Genre)
	assert.False(t, r.IsErrorLog)
	assert.Equal(t, "Day 1: Test Song", r.Description)
}

// Every manifest slot produces exactly one release in manifest order, with
// sequential day numbers.
func TestMerge_EveryManifestSlotCovered(t *testing.T) {
	manifest := manifestOf(
		entry("january", 1, "One", "wav"),
		entry("january", 2, "Two", "mp3"),
		entry("january", 3, "Three", "flac"),
	)

	releases := Merge(manifest, Sources{}, testStart(t))
	require.Len(t, releases, 3)
	for i, r := range releases {
		assert.Equal(t, i+1, r.Day)
	}
	assert.Equal(t, "Two", releases[1].Title)
	assert.Equal(t, "2026-01-03", releases[2].Date)
}

// Field values fall back through the sources in authority order: the complete
// export wins over analysis, analysis fills what the export lacks.
func TestMerge_FieldFallbackPriority(t *testing.T) {
	manifest := manifestOf(entry("january", 1, "Fallback", "wav"))

	src := Sources{
		Complete: NewIndex([]models.RawSongRecord{{
			ID:     "song-42",
			Title:  "Fallback",
			Energy: fptr(0.9),
			Tempo:  fptr(120.4),
		}}),
		Analysis: NewIndex([]models.RawSongRecord{{
			Title:   "Fallback",
			Energy:  fptr(0.1),
			Valence: fptr(0.2),
			Key:     sptr("C minor"),
		}}),
	}

	releases := Merge(manifest, src, testStart(t))
	require.Len(t, releases, 1)

	r := releases[0]
	assert.Equal(t, "song-42", r.ID)
	assert.Equal(t, 0.9, r.Energy, "complete export wins over analysis")
	assert.Equal(t, 0.2, r.Valence, "analysis fills what the export lacks")
	assert.Equal(t, "C minor", r.Key)
	assert.Equal(t, 120, r.Tempo, "tempo is rounded to the nearest integer")
	assert.Equal(t, models.MoodDark, r.Mood, "valence 0.2 is dark")
}

// An empty value from a higher-priority source is a real value, not absence:
// it must not be overridden by a lower-priority source.
func TestMerge_EmptyValueIsPresent(t *testing.T) {
	manifest := manifestOf(entry("january", 1, "Empty", "wav"))

	src := Sources{
		Complete: NewIndex([]models.RawSongRecord{{
			Title:  "Empty",
			Lyrics: sptr(""),
			Genre:  []string{},
		}}),
		Analysis: NewIndex([]models.RawSongRecord{{
			Title:  "Empty",
			Lyrics: sptr("la la la"),
			Genre:  []string{"ambient"},
		}}),
	}

	releases := Merge(manifest, src, testStart(t))
	require.Len(t, releases, 1)

	r := releases[0]
	assert.Equal(t, "", r.Lyrics, "empty lyric string is present, not missing")
	assert.Equal(t, []string{}, r.Genre, "empty genre list is present, not missing")
}

// Records can match by normalized title, by stored file name, or by id.
func TestMerge_MatchStrategies(t *testing.T) {
	manifest := manifestOf(
		entry("january", 1, "Title Match", "wav"),
		entry("january", 2, "File Match", "wav"),
		entry("january", 3, "id-xyz", "wav"),
	)

	src := Sources{
		Complete: NewIndex([]models.RawSongRecord{
			{Title: "  title   MATCH ", Energy: fptr(0.1)},
			{FileName: "02 - File Match.mp3", Energy: fptr(0.2)},
			{ID: "id-xyz", Title: "Something Else Entirely", Energy: fptr(0.3)},
		}),
	}

	releases := Merge(manifest, src, testStart(t))
	require.Len(t, releases, 3)
	assert.Equal(t, 0.1, releases[0].Energy, "matched by normalized title")
	assert.Equal(t, 0.2, releases[1].Energy, "matched by file name, extension ignored")
	assert.Equal(t, 0.3, releases[2].Energy, "matched by id")
}

// Lyric words with inverted bounds are dropped and the rest sorted by start.
func TestMerge_SanitizesLyricWords(t *testing.T) {
	manifest := manifestOf(entry("january", 1, "Timing", "wav"))

	src := Sources{
		Transcription: NewIndex([]models.RawSongRecord{{
			Title: "Timing",
			LyricsWords: []models.LyricWord{
				{Start: 5, End: 2, Word: "broken"},
				{Start: 3, End: 4, Word: "later"},
				{Start: 1, End: 2, Word: "earlier"},
			},
		}}),
	}

	releases := Merge(manifest, src, testStart(t))
	require.Len(t, releases, 1)

	words := releases[0].LyricsWords
	require.Len(t, words, 2)
	assert.Equal(t, "earlier", words[0].Word)
	assert.Equal(t, "later", words[1].Word)
}

// An error-log file name forces the error-log description and flags the track,
// regardless of enrichment.
func TestMerge_ErrorLogTrack(t *testing.T) {
	manifest := manifestOf(entry("march", 7, "LOG_PERMISSION_DENIED", "wav"))

	src := Sources{
		Lyrics: NewIndex([]models.RawSongRecord{{
			Title:          "LOG_PERMISSION_DENIED",
			LyricsAnalysis: &models.LyricsAnalysis{Themes: []string{"decay"}},
		}}),
	}

	releases := Merge(manifest, src, testStart(t))
	require.Len(t, releases, 1)

	r := releases[0]
	assert.True(t, r.IsErrorLog)
	assert.Contains(t, r.Description, "SYSTEM LOG 001")
	assert.Contains(t, r.Description, "LOG_PERMISSION_DENIED")
}

// The lyrics dataset contributes text and themes when the complete export has
// neither, and themed tracks get the theme-based description.
func TestMerge_LyricsEnrichment(t *testing.T) {
	manifest := manifestOf(entry("january", 1, "Verse", "wav"))

	src := Sources{
		Complete: NewIndex([]models.RawSongRecord{{Title: "Verse", Valence: fptr(0.8)}}),
		Lyrics: NewIndex([]models.RawSongRecord{{
			Title:  "Verse",
			Lyrics: sptr("first line\nsecond line"),
			LyricsSegments: []models.LyricSegment{
				{Start: 0, End: 2, Text: "first line"},
			},
			LyricsAnalysis: &models.LyricsAnalysis{Themes: []string{"memory", "loss", "time"}},
		}}),
	}

	releases := Merge(manifest, src, testStart(t))
	require.Len(t, releases, 1)

	r := releases[0]
	assert.Equal(t, "first line\nsecond line", r.Lyrics)
	require.Len(t, r.LyricsSegments, 1)
	assert.Contains(t, r.Description, "memory and loss", "only the first two themes are used")
}

// Valence and keywords agreeing on dark produce a dark release.
func TestMerge_DarkMoodAgreement(t *testing.T) {
	manifest := manifestOf(entry("january", 5, "Devour", "wav"))

	src := Sources{
		Complete: NewIndex([]models.RawSongRecord{{
			FileName: "05 - Devour.wav",
			Valence:  fptr(0.2),
			Mood:     []string{"dark", "intense"},
		}}),
	}

	releases := Merge(manifest, src, testStart(t))
	require.Len(t, releases, 1)
	assert.Equal(t, models.MoodDark, releases[0].Mood)
	assert.Equal(t, 0.2, releases[0].Valence)
}

func TestMerge_TagsFromMoodsAndGenre(t *testing.T) {
	manifest := manifestOf(entry("january", 1, "Tagged", "wav"))

	src := Sources{
		Analysis: NewIndex([]models.RawSongRecord{{
			Title: "Tagged",
			Mood:  []string{"haunting", "somber", "slow"},
			Genre: []string{"ambient", "drone"},
		}}),
	}

	releases := Merge(manifest, src, testStart(t))
	require.Len(t, releases, 1)

	r := releases[0]
	assert.Equal(t, []string{"haunting", "somber", "ambient"}, r.Tags)
	assert.Equal(t, models.MoodDark, r.Mood, "dark keywords override valence default")
}

func TestComputeStats(t *testing.T) {
	releases := []models.Release{
		{Mood: models.MoodLight},
		{Mood: models.MoodDark, IsErrorLog: true},
		{Mood: models.MoodDark},
	}

	stats := ComputeStats(releases)
	assert.Equal(t, 3, stats.TotalReleases)
	assert.Equal(t, 1, stats.LightTracks)
	assert.Equal(t, 2, stats.DarkTracks)
	assert.Equal(t, 1, stats.ErrorLogs)
}

func TestManifestFileName(t *testing.T) {
	assert.Equal(t, "05 - Night Air.flac", ManifestFileName(entry("may", 5, "Night Air", "flac")))
}
