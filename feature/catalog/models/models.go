package models

// Mood is the binary light/dark classification of a release.
type Mood string

const (
	MoodLight Mood = "light"
	MoodDark  Mood = "dark"
)

// ManifestEntry describes one audio asset slot in the release calendar.
// Entries are produced by scanning a fixed directory layout (or the storage
// bucket) and are immutable once generated.
type ManifestEntry struct {
	// Month is the lowercase month name (january..december).
	Month string `json:"month"`
	// Index is the day within the month (1..31).
	Index int `json:"index"`
	// StorageTitle is the title as it appears in the stored file name.
	StorageTitle string `json:"storageTitle"`
	// Ext is the audio file extension without dot (wav, mp3, ...).
	Ext string `json:"ext"`
	// AudioPath is the manifest-relative path of the audio file.
	AudioPath string `json:"audioPath"`
	// CoverPath is the manifest-relative cover path, empty when none exists.
	CoverPath string `json:"coverPath,omitempty"`
}

// Manifest is the ordered, authoritative list of calendar slots.
type Manifest struct {
	Version     int             `json:"version"`
	GeneratedAt string          `json:"generatedAt"`
	Items       []ManifestEntry `json:"items"`
}

// LyricWord is a single word with playback timing in seconds.
type LyricWord struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Word  string  `json:"word"`
}

// LyricSegment is a lyric line with playback timing in seconds.
type LyricSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// LyricsAnalysis carries thematic metadata extracted from the lyrics.
type LyricsAnalysis struct {
	Themes  []string `json:"themes,omitempty"`
	Summary string   `json:"summary,omitempty"`
}

// RawSongRecord is the canonical normalized shape every dataset adapter maps
// into before merging. All fields are optional; pointer and nil-slice values
// mean "absent", while empty strings and empty slices are real values that the
// merge must respect.
type RawSongRecord struct {
	ID       string
	FileName string
	Title    string

	Duration      *float64
	Tempo         *float64
	Key           *string
	TimeSignature *string

	Energy           *float64
	Danceability     *float64
	Valence          *float64
	Acousticness     *float64
	Instrumentalness *float64
	Loudness         *float64
	Speechiness      *float64
	Liveness         *float64

	Genre []string
	Mood  []string

	Lyrics         *string
	LyricsSegments []LyricSegment
	LyricsWords    []LyricWord
	LyricsAnalysis *LyricsAnalysis

	StoredAudioURL *string
}

// Release is the canonical, fully-merged record for one day's published track.
// Release values are constructed once per reconciliation run and are immutable
// thereafter.
type Release struct {
	ID                string          `json:"id"`
	Day               int             `json:"day"`
	Date              string          `json:"date"`
	FileName          string          `json:"fileName"`
	Title             string          `json:"title"`
	StorageTitle      string          `json:"storageTitle"`
	ManifestAudioPath string          `json:"manifestAudioPath,omitempty"`
	Mood              Mood            `json:"mood"`
	Description       string          `json:"description"`
	StoredAudioURL    string          `json:"storedAudioUrl,omitempty"`
	Duration          float64         `json:"duration,omitempty"`
	DurationFormatted string          `json:"durationFormatted"`
	Tempo             int             `json:"tempo,omitempty"`
	Key               string          `json:"key,omitempty"`
	TimeSignature     string          `json:"timeSignature,omitempty"`
	Energy            float64         `json:"energy"`
	Valence           float64         `json:"valence"`
	Danceability      *float64        `json:"danceability,omitempty"`
	Acousticness      *float64        `json:"acousticness,omitempty"`
	Instrumentalness  *float64        `json:"instrumentalness,omitempty"`
	Loudness          *float64        `json:"loudness,omitempty"`
	Speechiness       *float64        `json:"speechiness,omitempty"`
	Liveness          *float64        `json:"liveness,omitempty"`
	Genre             []string        `json:"genre"`
	Tags              []string        `json:"tags"`
	Lyrics            string          `json:"lyrics,omitempty"`
	LyricsSegments    []LyricSegment  `json:"lyricsSegments,omitempty"`
	LyricsWords       []LyricWord     `json:"lyricsWords,omitempty"`
	LyricsAnalysis    *LyricsAnalysis `json:"lyricsAnalysis,omitempty"`
	IsErrorLog        bool            `json:"isErrorLog"`
}

// Stats is the aggregate summary recomputed from the final Release array.
type Stats struct {
	TotalReleases int `json:"totalReleases"`
	LightTracks   int `json:"lightTracks"`
	DarkTracks    int `json:"darkTracks"`
	ErrorLogs     int `json:"errorLogs"`
}

// Project identifies the release project in the catalog envelope.
type Project struct {
	Name      string `json:"name"`
	Artist    string `json:"artist,omitempty"`
	StartDate string `json:"startDate"`
	TotalDays int    `json:"totalDays"`
}

// MonthTheme labels one calendar month in the catalog envelope.
type MonthTheme struct {
	Month string `json:"month"`
	Theme string `json:"theme,omitempty"`
}

// Catalog is the full reconciliation artifact. Releases is the core payload;
// the remaining sections are presentational envelope data.
type Catalog struct {
	Project            Project           `json:"project"`
	Socials            map[string]string `json:"socials"`
	Releases           []Release         `json:"releases"`
	Stats              Stats             `json:"stats"`
	Announcements      []string          `json:"announcements"`
	UpcomingMilestones []string          `json:"upcomingMilestones"`
	MonthThemes        []MonthTheme      `json:"monthThemes"`
}
