package catalog

import (
	"release-manager/feature/catalog/models"
	"release-manager/feature/catalog/timeline"
)

// LyricFrame is the lyric rendering state at one playback timestamp.
type LyricFrame struct {
	Day int     `json:"day"`
	T   float64 `json:"t"`
	// ActiveWordIndex is the index of the word currently sounding, or the
	// last word already past; -1 before the first word.
	ActiveWordIndex int `json:"activeWordIndex"`
	// Active reports whether the word at ActiveWordIndex is still sounding.
	Active bool `json:"active"`
	// SegmentIndex is the index of the lyric line containing the active
	// word; -1 when there is no active word or no containing segment.
	SegmentIndex int `json:"segmentIndex"`
}

// BuildLyricFrame computes the lyric state of a release at playback time t.
func BuildLyricFrame(rel *models.Release, t float64) LyricFrame {
	frame := LyricFrame{
		Day:          rel.Day,
		T:            t,
		SegmentIndex: -1,
	}

	frame.ActiveWordIndex = timeline.ActiveWordIndex(rel.LyricsWords, t)
	frame.Active = timeline.IsActive(rel.LyricsWords, frame.ActiveWordIndex, t)

	if frame.ActiveWordIndex >= 0 && len(rel.LyricsSegments) > 0 {
		buckets := timeline.BucketWords(rel.LyricsSegments, rel.LyricsWords)
		word := rel.LyricsWords[frame.ActiveWordIndex]
		for i, bucket := range buckets {
			for _, w := range bucket {
				if w == word {
					frame.SegmentIndex = i
					break
				}
			}
			if frame.SegmentIndex >= 0 {
				break
			}
		}
	}

	return frame
}
