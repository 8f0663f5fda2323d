package catalog

import (
	"fmt"
	"math"
	"path"
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	dayPrefixRe  = regexp.MustCompile(`^\d{1,2} - `)
	illegalRe    = regexp.MustCompile(`[\\/:*?"<>|]`)
)

// NormalizeTitle produces the matching key for a title: lowercase, trimmed,
// internal whitespace collapsed.
func NormalizeTitle(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return whitespaceRe.ReplaceAllString(s, " ")
}

// TitleFromFileName derives a display title from a stored file name. The
// extension and the leading "NN - " day-index prefix are stripped, along with
// characters that are illegal in file paths.
func TitleFromFileName(fileName string) string {
	base := StripExtension(path.Base(fileName))
	base = dayPrefixRe.ReplaceAllString(base, "")
	base = illegalRe.ReplaceAllString(base, "")
	return strings.TrimSpace(base)
}

// NormalizeFileKey produces the matching key for a file name: extension
// stripped, day prefix stripped, then normalized like a title.
func NormalizeFileKey(fileName string) string {
	return NormalizeTitle(TitleFromFileName(fileName))
}

// StripExtension removes the final extension from a file name.
func StripExtension(name string) string {
	if ext := path.Ext(name); ext != "" {
		return strings.TrimSuffix(name, ext)
	}
	return name
}

// FormatDuration renders a duration in seconds as M:SS. Non-finite or
// non-positive values format as "0:00".
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return "0:00"
	}
	total := int(math.Floor(seconds))
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
