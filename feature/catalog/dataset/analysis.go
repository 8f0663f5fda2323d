package dataset

import "release-manager/feature/catalog/models"

// AnalysisAdapter normalizes the audio "analysis" export. Audio features nest
// under an "analysis" object and classification lives under
// "classification.genres" / "classification.moods".
type AnalysisAdapter struct{}

// NewAnalysis creates the analysis-dataset adapter.
func NewAnalysis() *AnalysisAdapter { return &AnalysisAdapter{} }

func (a *AnalysisAdapter) Name() string { return "analysis" }

func (a *AnalysisAdapter) FileName() string { return "analysis.json" }

func (a *AnalysisAdapter) Normalize(raw map[string]any) models.RawSongRecord {
	id, fileName, title := identity(raw)
	return models.RawSongRecord{
		ID:       id,
		FileName: fileName,
		Title:    title,

		Duration:      floatAt(raw, "analysis.duration", "duration"),
		Tempo:         floatAt(raw, "analysis.tempo", "tempo"),
		Key:           stringAt(raw, "analysis.key", "key"),
		TimeSignature: stringAt(raw, "analysis.timeSignature", "timeSignature"),

		Energy:           floatAt(raw, "analysis.energy", "energy"),
		Danceability:     floatAt(raw, "analysis.danceability", "danceability"),
		Valence:          floatAt(raw, "analysis.valence", "valence"),
		Acousticness:     floatAt(raw, "analysis.acousticness", "acousticness"),
		Instrumentalness: floatAt(raw, "analysis.instrumentalness", "instrumentalness"),
		Loudness:         floatAt(raw, "analysis.loudness", "loudness"),
		Speechiness:      floatAt(raw, "analysis.speechiness", "speechiness"),
		Liveness:         floatAt(raw, "analysis.liveness", "liveness"),

		Genre: stringsAt(raw, "classification.genres", "genre"),
		Mood:  stringsAt(raw, "classification.moods", "mood"),

		Lyrics:         stringAt(raw, "lyrics"),
		LyricsAnalysis: analysisAt(raw, "lyricsAnalysis", "analysis.lyrics"),
	}
}
