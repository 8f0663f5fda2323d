package dataset

import "release-manager/feature/catalog/models"

// TranscriptionAdapter normalizes the transcription export: machine
// transcribed text with word-level timing.
type TranscriptionAdapter struct{}

// NewTranscription creates the transcription-dataset adapter.
func NewTranscription() *TranscriptionAdapter { return &TranscriptionAdapter{} }

func (a *TranscriptionAdapter) Name() string { return "transcription" }

func (a *TranscriptionAdapter) FileName() string { return "transcription.json" }

func (a *TranscriptionAdapter) Normalize(raw map[string]any) models.RawSongRecord {
	id, fileName, title := identity(raw)
	return models.RawSongRecord{
		ID:       id,
		FileName: fileName,
		Title:    title,

		Lyrics:         stringAt(raw, "transcription", "text", "lyrics"),
		LyricsSegments: segmentsAt(raw, "segments"),
		LyricsWords:    wordsAt(raw, "words", "lyricsWords"),
	}
}
