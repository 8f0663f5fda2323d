package timeline

import "release-manager/feature/catalog/models"

// ActiveWordIndex returns the index of the last word whose start is at or
// before t, using binary search over the start-sorted word list. Returns -1
// when no word has started yet.
func ActiveWordIndex(words []models.LyricWord, t float64) int {
	lo, hi := 0, len(words)-1
	result := -1
	for lo <= hi {
		mid := (lo + hi) / 2
		if words[mid].Start <= t {
			result = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return result
}

// IsActive reports whether the word at idx is still sounding at t. A word is
// "active" while t < end; afterwards it is "past".
func IsActive(words []models.LyricWord, idx int, t float64) bool {
	if idx < 0 || idx >= len(words) {
		return false
	}
	return words[idx].Start <= t && t < words[idx].End
}

// BucketWords assigns each word to the first segment whose time bounds fully
// contain it. Overlapping segments therefore degrade to first-wins rather
// than duplicating words across lines.
func BucketWords(segments []models.LyricSegment, words []models.LyricWord) [][]models.LyricWord {
	buckets := make([][]models.LyricWord, len(segments))
	for _, w := range words {
		for i, seg := range segments {
			if w.Start >= seg.Start && w.End <= seg.End {
				buckets[i] = append(buckets[i], w)
				break
			}
		}
	}
	return buckets
}
