package dataset

import "release-manager/feature/catalog/models"

// CompleteAdapter normalizes the "complete" song database export, the most
// authoritative enrichment source. Its fields live at the top level of each
// song object.
type CompleteAdapter struct{}

// NewComplete creates the complete-dataset adapter.
func NewComplete() *CompleteAdapter { return &CompleteAdapter{} }

func (a *CompleteAdapter) Name() string { return "complete" }

func (a *CompleteAdapter) FileName() string { return "complete.json" }

func (a *CompleteAdapter) Normalize(raw map[string]any) models.RawSongRecord {
	id, fileName, title := identity(raw)
	return models.RawSongRecord{
		ID:       id,
		FileName: fileName,
		Title:    title,

		Duration:      floatAt(raw, "duration"),
		Tempo:         floatAt(raw, "tempo", "bpm"),
		Key:           stringAt(raw, "key"),
		TimeSignature: stringAt(raw, "timeSignature", "time_signature"),

		Energy:           floatAt(raw, "energy"),
		Danceability:     floatAt(raw, "danceability"),
		Valence:          floatAt(raw, "valence"),
		Acousticness:     floatAt(raw, "acousticness"),
		Instrumentalness: floatAt(raw, "instrumentalness"),
		Loudness:         floatAt(raw, "loudness"),
		Speechiness:      floatAt(raw, "speechiness"),
		Liveness:         floatAt(raw, "liveness"),

		Genre: stringsAt(raw, "genre", "genres"),
		Mood:  stringsAt(raw, "mood", "moods"),

		Lyrics:         stringAt(raw, "lyrics"),
		LyricsSegments: segmentsAt(raw, "lyricsSegments"),
		LyricsWords:    wordsAt(raw, "lyricsWords"),
		LyricsAnalysis: analysisAt(raw, "lyricsAnalysis"),

		StoredAudioURL: stringAt(raw, "storedAudioUrl", "audioUrl"),
	}
}
