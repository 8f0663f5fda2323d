package catalog

import (
	"strings"

	"release-manager/feature/catalog/models"
)

// darkKeywords and lightKeywords classify mood tags. A tag matches a keyword
// by substring so variants like "darker" or "melancholic" still count.
var darkKeywords = []string{
	"dark", "intense", "sad", "grief", "melanchol", "angry", "aggressive",
	"haunting", "brooding", "somber", "heavy", "ominous", "anxious",
}

var lightKeywords = []string{
	"light", "happy", "joy", "upbeat", "bright", "calm", "peaceful",
	"hopeful", "uplifting", "dreamy", "playful", "serene", "warm",
}

// ValenceThreshold separates light from dark when keywords don't decide.
const ValenceThreshold = 0.5

// DetermineMood resolves the binary mood classification from valence and the
// keyword-matched mood tags. A one-sided keyword match overrides the
// valence-based default; a tie (both or neither) leaves the default standing.
// Pure function: identical inputs always yield identical output.
func DetermineMood(valence float64, moods []string) models.Mood {
	hasDark := matchesAny(moods, darkKeywords)
	hasLight := matchesAny(moods, lightKeywords)

	if hasDark && !hasLight {
		return models.MoodDark
	}
	if hasLight && !hasDark {
		return models.MoodLight
	}
	if valence < ValenceThreshold {
		return models.MoodDark
	}
	return models.MoodLight
}

func matchesAny(tags, keywords []string) bool {
	for _, tag := range tags {
		lower := strings.ToLower(tag)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}
