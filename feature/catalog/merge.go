package catalog

import (
	"fmt"
	"math"
	"sort"
	"time"

	"release-manager/feature/catalog/models"
)

// Sources bundles the per-dataset indices for one reconciliation run. Any
// index may be nil; a missing dataset degrades enrichment, never availability.
type Sources struct {
	Complete      *Index
	Analysis      *Index
	Lyrics        *Index
	Transcription *Index
}

// matches holds the per-dataset match results for one manifest entry.
type matches struct {
	complete      *models.RawSongRecord
	analysis      *models.RawSongRecord
	lyrics        *models.RawSongRecord
	transcription *models.RawSongRecord
}

func (m matches) any() bool {
	return m.complete != nil || m.analysis != nil || m.lyrics != nil || m.transcription != nil
}

// Default values for the two features every finished Release must carry.
const (
	DefaultEnergy  = 0.0
	DefaultValence = 0.5
)

// Merge reconciles the manifest with the enrichment sources into the canonical
// ordered Release array. The manifest is authoritative for day ordering, file
// names and extensions; enrichment fields fall back through the sources in
// authority order per field. Merge never fails on partial data.
func Merge(manifest *models.Manifest, src Sources, start time.Time) []models.Release {
	releases := make([]models.Release, 0, len(manifest.Items))
	for i, entry := range manifest.Items {
		releases = append(releases, mergeEntry(entry, i+1, src, start))
	}
	return releases
}

func mergeEntry(entry models.ManifestEntry, day int, src Sources, start time.Time) models.Release {
	m := matches{
		complete:      src.Complete.Match(entry),
		analysis:      src.Analysis.Match(entry),
		lyrics:        src.Lyrics.Match(entry),
		transcription: src.Transcription.Match(entry),
	}

	fileName := ManifestFileName(entry)

	rel := models.Release{
		Day:               day,
		Date:              DateForDay(start, day),
		FileName:          fileName,
		Title:             entry.StorageTitle,
		StorageTitle:      entry.StorageTitle,
		ManifestAudioPath: entry.AudioPath,
		IsErrorLog:        IsErrorLogName(fileName),
	}

	// Identity: the complete export's id wins; otherwise derive a stable one.
	if m.complete != nil && m.complete.ID != "" {
		rel.ID = m.complete.ID
	} else {
		rel.ID = fmt.Sprintf("day-%03d", day)
	}

	// Audio features: complete export first, analysis as the only fallback.
	features := []*models.RawSongRecord{m.complete, m.analysis}
	rel.Energy = floatOr(pickFloat(features, func(r *models.RawSongRecord) *float64 { return r.Energy }), DefaultEnergy)
	rel.Valence = floatOr(pickFloat(features, func(r *models.RawSongRecord) *float64 { return r.Valence }), DefaultValence)
	rel.Danceability = pickFloat(features, func(r *models.RawSongRecord) *float64 { return r.Danceability })
	rel.Acousticness = pickFloat(features, func(r *models.RawSongRecord) *float64 { return r.Acousticness })
	rel.Instrumentalness = pickFloat(features, func(r *models.RawSongRecord) *float64 { return r.Instrumentalness })
	rel.Loudness = pickFloat(features, func(r *models.RawSongRecord) *float64 { return r.Loudness })
	rel.Speechiness = pickFloat(features, func(r *models.RawSongRecord) *float64 { return r.Speechiness })
	rel.Liveness = pickFloat(features, func(r *models.RawSongRecord) *float64 { return r.Liveness })

	if d := pickFloat(features, func(r *models.RawSongRecord) *float64 { return r.Duration }); d != nil {
		rel.Duration = *d
	}
	rel.DurationFormatted = FormatDuration(rel.Duration)

	if tempo := pickFloat(features, func(r *models.RawSongRecord) *float64 { return r.Tempo }); tempo != nil {
		rel.Tempo = int(math.Round(*tempo))
	}
	if key := pickString(features, func(r *models.RawSongRecord) *string { return r.Key }); key != nil {
		rel.Key = *key
	}
	if ts := pickString(features, func(r *models.RawSongRecord) *string { return r.TimeSignature }); ts != nil {
		rel.TimeSignature = *ts
	}

	// Classification: a non-nil (even empty) list from a higher-priority
	// source is respected and never overridden by a lower one.
	genre := pickStrings(features, func(r *models.RawSongRecord) []string { return r.Genre })
	moods := pickStrings(features, func(r *models.RawSongRecord) []string { return r.Mood })
	rel.Genre = genre
	if rel.Genre == nil {
		rel.Genre = []string{}
	}

	// Lyric text falls back complete → analysis → lyrics → transcription.
	lyricSources := []*models.RawSongRecord{m.complete, m.analysis, m.lyrics, m.transcription}
	if lyrics := pickString(lyricSources, func(r *models.RawSongRecord) *string { return r.Lyrics }); lyrics != nil {
		rel.Lyrics = *lyrics
	}
	rel.LyricsSegments = pickSegments([]*models.RawSongRecord{m.complete, m.lyrics, m.transcription})
	rel.LyricsWords = sanitizeWords(pickWords([]*models.RawSongRecord{m.complete, m.transcription}))
	rel.LyricsAnalysis = pickAnalysis([]*models.RawSongRecord{m.complete, m.analysis, m.lyrics})

	if u := pickString([]*models.RawSongRecord{m.complete}, func(r *models.RawSongRecord) *string { return r.StoredAudioURL }); u != nil {
		rel.StoredAudioURL = *u
	}

	rel.Mood = DetermineMood(rel.Valence, moods)

	if m.any() {
		rel.Tags = BuildTags(moods, genre)
	} else {
		rel.Tags = BuildTags(nil, nil)
	}

	var themes []string
	if rel.LyricsAnalysis != nil {
		themes = rel.LyricsAnalysis.Themes
	}
	rel.Description = Describe(DescribeInput{
		Day:        day,
		Title:      rel.Title,
		IsErrorLog: rel.IsErrorLog,
		Themes:     themes,
		Matched:    m.any(),
		Mood:       rel.Mood,
		Tempo:      rel.Tempo,
		Key:        rel.Key,
	})

	return rel
}

// ManifestFileName rebuilds the stored file name for a manifest entry.
func ManifestFileName(entry models.ManifestEntry) string {
	return fmt.Sprintf("%02d - %s.%s", entry.Index, entry.StorageTitle, entry.Ext)
}

// ComputeStats recomputes the aggregate summary from the final Release array.
func ComputeStats(releases []models.Release) models.Stats {
	stats := models.Stats{TotalReleases: len(releases)}
	for _, r := range releases {
		switch r.Mood {
		case models.MoodLight:
			stats.LightTracks++
		case models.MoodDark:
			stats.DarkTracks++
		}
		if r.IsErrorLog {
			stats.ErrorLogs++
		}
	}
	return stats
}

func pickFloat(recs []*models.RawSongRecord, get func(*models.RawSongRecord) *float64) *float64 {
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		if v := get(rec); v != nil {
			return v
		}
	}
	return nil
}

func pickString(recs []*models.RawSongRecord, get func(*models.RawSongRecord) *string) *string {
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		if v := get(rec); v != nil {
			return v
		}
	}
	return nil
}

func pickStrings(recs []*models.RawSongRecord, get func(*models.RawSongRecord) []string) []string {
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		if v := get(rec); v != nil {
			return v
		}
	}
	return nil
}

func pickSegments(recs []*models.RawSongRecord) []models.LyricSegment {
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		if rec.LyricsSegments != nil {
			return rec.LyricsSegments
		}
	}
	return nil
}

func pickWords(recs []*models.RawSongRecord) []models.LyricWord {
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		if rec.LyricsWords != nil {
			return rec.LyricsWords
		}
	}
	return nil
}

func pickAnalysis(recs []*models.RawSongRecord) *models.LyricsAnalysis {
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		if rec.LyricsAnalysis != nil {
			return rec.LyricsAnalysis
		}
	}
	return nil
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// sanitizeWords enforces the lyric word invariants: drop start>end entries,
// sort ascending by start, nil out an empty result.
func sanitizeWords(words []models.LyricWord) []models.LyricWord {
	if words == nil {
		return nil
	}
	out := make([]models.LyricWord, 0, len(words))
	for _, w := range words {
		if w.Start > w.End {
			continue
		}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
