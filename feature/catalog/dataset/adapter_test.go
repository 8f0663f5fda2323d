package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_CompleteExport(t *testing.T) {
	data := []byte(`{
		"songs": [
			{
				"id": "s1",
				"fileName": "01 - Morning Light.wav",
				"title": "Morning Light",
				"duration": 185.5,
				"tempo": 120.4,
				"key": "C major",
				"energy": 0.7,
				"valence": 0.8,
				"genre": ["ambient"],
				"mood": ["calm", "warm"],
				"lyrics": "some words",
				"storedAudioUrl": "https://cdn.example.com/s1.wav"
			}
		]
	}`)

	records, err := Parse(data, NewComplete())
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "s1", r.ID)
	assert.Equal(t, "Morning Light", r.Title)
	require.NotNil(t, r.Duration)
	assert.Equal(t, 185.5, *r.Duration)
	require.NotNil(t, r.Valence)
	assert.Equal(t, 0.8, *r.Valence)
	assert.Equal(t, []string{"calm", "warm"}, r.Mood)
	require.NotNil(t, r.StoredAudioURL)
	assert.Equal(t, "https://cdn.example.com/s1.wav", *r.StoredAudioURL)
	assert.Nil(t, r.Danceability, "missing fields stay nil")
}

// JSON null and a missing key both mean absent; an empty string or empty
// array is a real value and must survive normalization as such.
func TestParse_AbsentVersusEmpty(t *testing.T) {
	data := []byte(`{
		"songs": [
			{"title": "A", "lyrics": "", "genre": []},
			{"title": "B", "lyrics": null}
		]
	}`)

	records, err := Parse(data, NewComplete())
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NotNil(t, records[0].Lyrics)
	assert.Equal(t, "", *records[0].Lyrics)
	require.NotNil(t, records[0].Genre)
	assert.Empty(t, records[0].Genre)

	assert.Nil(t, records[1].Lyrics, "null means absent")
	assert.Nil(t, records[1].Genre)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{"songs": [`), NewComplete())
	assert.Error(t, err)
}

func TestAnalysisAdapter_NestedFields(t *testing.T) {
	data := []byte(`{
		"songs": [
			{
				"title": "Nested",
				"analysis": {"energy": 0.4, "tempo": 98, "key": "D minor"},
				"classification": {"genres": ["electronic"], "moods": ["brooding"]}
			}
		]
	}`)

	records, err := Parse(data, NewAnalysis())
	require.NoError(t, err)
	require.Len(t, records, 1)

	r := records[0]
	require.NotNil(t, r.Energy)
	assert.Equal(t, 0.4, *r.Energy)
	require.NotNil(t, r.Key)
	assert.Equal(t, "D minor", *r.Key)
	assert.Equal(t, []string{"electronic"}, r.Genre)
	assert.Equal(t, []string{"brooding"}, r.Mood)
}

func TestAnalysisAdapter_FlatFallback(t *testing.T) {
	data := []byte(`{"songs": [{"title": "Flat", "energy": 0.9}]}`)

	records, err := Parse(data, NewAnalysis())
	require.NoError(t, err)
	require.NotNil(t, records[0].Energy)
	assert.Equal(t, 0.9, *records[0].Energy)
}

func TestLyricsAdapter(t *testing.T) {
	data := []byte(`{
		"songs": [
			{
				"title": "Verse",
				"text": "line one\nline two",
				"segments": [
					{"start": 2, "end": 4, "text": "line two"},
					{"start": 0, "end": 2, "text": "line one"}
				],
				"analysis": {"themes": ["memory"], "summary": "a short song"}
			}
		]
	}`)

	records, err := Parse(data, NewLyrics())
	require.NoError(t, err)
	r := records[0]

	require.NotNil(t, r.Lyrics)
	assert.Equal(t, "line one\nline two", *r.Lyrics)
	require.Len(t, r.LyricsSegments, 2)
	assert.Equal(t, "line one", r.LyricsSegments[0].Text, "segments sort by start")
	require.NotNil(t, r.LyricsAnalysis)
	assert.Equal(t, []string{"memory"}, r.LyricsAnalysis.Themes)
}

func TestTranscriptionAdapter_WordTiming(t *testing.T) {
	data := []byte(`{
		"songs": [
			{
				"title": "Spoken",
				"transcription": "hello world",
				"words": [
					{"start": 1.5, "end": 2.0, "word": "world"},
					{"start": 1.0, "end": 1.4, "word": "hello"},
					{"start": 9.0, "end": 3.0, "word": "inverted"}
				]
			}
		]
	}`)

	records, err := Parse(data, NewTranscription())
	require.NoError(t, err)
	r := records[0]

	require.NotNil(t, r.Lyrics)
	assert.Equal(t, "hello world", *r.Lyrics)
	require.Len(t, r.LyricsWords, 2, "inverted word timing is dropped")
	assert.Equal(t, "hello", r.LyricsWords[0].Word)
	assert.Equal(t, "world", r.LyricsWords[1].Word)
}

func TestAdapterFileNames(t *testing.T) {
	assert.Equal(t, "complete.json", NewComplete().FileName())
	assert.Equal(t, "analysis.json", NewAnalysis().FileName())
	assert.Equal(t, "lyrics.json", NewLyrics().FileName())
	assert.Equal(t, "transcription.json", NewTranscription().FileName())
}
