package dataset

import "release-manager/feature/catalog/models"

// LyricsAdapter normalizes the lyrics export: plain lyric text plus timed
// line segments.
type LyricsAdapter struct{}

// NewLyrics creates the lyrics-dataset adapter.
func NewLyrics() *LyricsAdapter { return &LyricsAdapter{} }

func (a *LyricsAdapter) Name() string { return "lyrics" }

func (a *LyricsAdapter) FileName() string { return "lyrics.json" }

func (a *LyricsAdapter) Normalize(raw map[string]any) models.RawSongRecord {
	id, fileName, title := identity(raw)
	return models.RawSongRecord{
		ID:       id,
		FileName: fileName,
		Title:    title,

		Lyrics:         stringAt(raw, "lyrics", "text"),
		LyricsSegments: segmentsAt(raw, "segments", "lyricsSegments"),
		LyricsAnalysis: analysisAt(raw, "analysis", "lyricsAnalysis"),
	}
}
