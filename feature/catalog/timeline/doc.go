// Package timeline provides playback-time lookups over timed lyric words.
//
// The word list is sorted ascending by start time, which allows the active
// word for a playback timestamp to be found in O(log n) via binary search.
// Segments (lines) derive their word sets by bucketing words whose time
// bounds fall inside the segment's bounds.
package timeline
