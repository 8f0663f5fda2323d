package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"release-manager/core/storage"
	"release-manager/core/utils"
	"release-manager/feature/catalog/models"

	"github.com/minio/minio-go/v7"
)

// Adapter normalizes one dataset's raw export shape into the canonical
// RawSongRecord. Different exports use different field names for the same
// concept (e.g. "mood" vs "classification.moods"); adapters absorb that so the
// merge stays shape-agnostic.
type Adapter interface {
	// Name returns the dataset name (complete, analysis, lyrics, transcription).
	Name() string

	// FileName returns the conventional export file name inside the data dir.
	FileName() string

	// Normalize maps one raw song object into the canonical record.
	Normalize(raw map[string]any) models.RawSongRecord
}

// export mirrors the common envelope of every dataset export file.
type export struct {
	Songs []map[string]any `json:"songs"`
}

// Parse decodes a dataset export and normalizes every song through the adapter.
func Parse(data []byte, a Adapter) ([]models.RawSongRecord, error) {
	var ex export
	if err := json.Unmarshal(data, &ex); err != nil {
		return nil, fmt.Errorf("failed to parse %s dataset: %w", a.Name(), err)
	}
	records := make([]models.RawSongRecord, 0, len(ex.Songs))
	for _, raw := range ex.Songs {
		records = append(records, a.Normalize(raw))
	}
	return records, nil
}

// LoadFile reads and parses a dataset export from the local filesystem.
func LoadFile(path string, a Adapter) ([]models.RawSongRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s dataset: %w", a.Name(), err)
	}
	return Parse(data, a)
}

// LoadObject reads and parses a dataset export from object storage.
func LoadObject(ctx context.Context, client storage.Client, bucket, objectName string, a Adapter) ([]models.RawSongRecord, error) {
	reader, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s dataset object: %w", a.Name(), err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s dataset object: %w", a.Name(), err)
	}
	return Parse(data, a)
}

// lookup walks a dot-notation path through nested objects. The boolean is
// false when any step is missing or the final value is null, so callers can
// distinguish absent from present-but-empty.
func lookup(raw map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var cur any = raw
	for _, p := range parts {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = m[p]
		if !ok {
			return nil, false
		}
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// floatAt returns a float pointer for the first present path.
func floatAt(raw map[string]any, paths ...string) *float64 {
	for _, p := range paths {
		if v, ok := lookup(raw, p); ok {
			f := utils.ToFloat(v)
			return &f
		}
	}
	return nil
}

// stringAt returns a string pointer for the first present path.
func stringAt(raw map[string]any, paths ...string) *string {
	for _, p := range paths {
		if v, ok := lookup(raw, p); ok {
			s := utils.ToString(v)
			return &s
		}
	}
	return nil
}

// stringsAt returns a string slice for the first present path; nil when absent.
func stringsAt(raw map[string]any, paths ...string) []string {
	for _, p := range paths {
		if v, ok := lookup(raw, p); ok {
			if out := utils.ToStrings(v); out != nil {
				return out
			}
			// Present but not slice-shaped; treat as explicit empty.
			return []string{}
		}
	}
	return nil
}

// identity extracts the shared id/fileName/title triple.
func identity(raw map[string]any) (id, fileName, title string) {
	if v, ok := lookup(raw, "id"); ok {
		id = utils.ToString(v)
	}
	if v, ok := lookup(raw, "fileName"); ok {
		fileName = utils.ToString(v)
	} else if v, ok := lookup(raw, "file_name"); ok {
		fileName = utils.ToString(v)
	}
	if v, ok := lookup(raw, "title"); ok {
		title = utils.ToString(v)
	}
	return id, fileName, title
}

// segmentsAt decodes lyric segments at the given path, sorted by start time.
func segmentsAt(raw map[string]any, paths ...string) []models.LyricSegment {
	for _, p := range paths {
		v, ok := lookup(raw, p)
		if !ok {
			continue
		}
		items, ok := v.([]any)
		if !ok {
			continue
		}
		segs := make([]models.LyricSegment, 0, len(items))
		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			seg := models.LyricSegment{
				Start: utils.ToFloat(m["start"]),
				End:   utils.ToFloat(m["end"]),
			}
			if t, ok := m["text"]; ok {
				seg.Text = utils.ToString(t)
			}
			segs = append(segs, seg)
		}
		sort.SliceStable(segs, func(i, j int) bool { return segs[i].Start < segs[j].Start })
		return segs
	}
	return nil
}

// wordsAt decodes timed words at the given path, dropping malformed entries
// (start > end) and sorting ascending by start as the timeline lookup requires.
func wordsAt(raw map[string]any, paths ...string) []models.LyricWord {
	for _, p := range paths {
		v, ok := lookup(raw, p)
		if !ok {
			continue
		}
		items, ok := v.([]any)
		if !ok {
			continue
		}
		words := make([]models.LyricWord, 0, len(items))
		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			w := models.LyricWord{
				Start: utils.ToFloat(m["start"]),
				End:   utils.ToFloat(m["end"]),
				Word:  utils.ToString(m["word"]),
			}
			if w.Start > w.End {
				continue
			}
			words = append(words, w)
		}
		sort.SliceStable(words, func(i, j int) bool { return words[i].Start < words[j].Start })
		if len(words) == 0 {
			return nil
		}
		return words
	}
	return nil
}

// analysisAt decodes a lyrics analysis block at the given path.
func analysisAt(raw map[string]any, paths ...string) *models.LyricsAnalysis {
	for _, p := range paths {
		v, ok := lookup(raw, p)
		if !ok {
			continue
		}
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		la := &models.LyricsAnalysis{}
		if themes, ok := m["themes"]; ok {
			la.Themes = utils.ToStrings(themes)
		}
		if summary, ok := m["summary"]; ok {
			la.Summary = utils.ToString(summary)
		}
		return la
	}
	return nil
}
