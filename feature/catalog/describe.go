package catalog

import (
	"fmt"
	"strings"

	"release-manager/core/rules"
	"release-manager/feature/catalog/models"
)

// errorLogMarkers are the file name sentinels identifying "system log" tracks.
var errorLogMarkers = []string{
	"LOG_", "PERMISSION_DENIED", "REBOOT_SEQUENCE", "CACHE_OVERFLOW_FULL",
}

// IsErrorLogName reports whether a file name marks the track as a system log.
func IsErrorLogName(fileName string) bool {
	for _, marker := range errorLogMarkers {
		if strings.Contains(fileName, marker) {
			return true
		}
	}
	return false
}

// DescribeInput carries everything the description chain can draw on.
type DescribeInput struct {
	Day        int
	Title      string
	IsErrorLog bool
	Themes     []string
	Matched    bool
	Mood       models.Mood
	Tempo      int
	Key        string
}

// describeChain is the description priority chain, evaluated top to bottom.
var describeChain = rules.Chain[DescribeInput, string]{
	{
		Name: "error-log",
		When: func(in DescribeInput) bool { return in.IsErrorLog },
		Then: func(in DescribeInput) string {
			return fmt.Sprintf("SYSTEM LOG %03d :: %s :: anomalous transmission recovered", in.Day, strings.ToUpper(in.Title))
		},
	},
	{
		Name: "lyric-themes",
		When: func(in DescribeInput) bool { return len(in.Themes) > 0 },
		Then: func(in DescribeInput) string {
			themes := in.Themes
			if len(themes) > 2 {
				themes = themes[:2]
			}
			return fmt.Sprintf("%s — a meditation on %s.", in.Title, strings.Join(themes, " and "))
		},
	},
	{
		Name: "musical-features",
		When: func(in DescribeInput) bool { return in.Matched },
		Then: func(in DescribeInput) string {
			desc := fmt.Sprintf("%s — a %s track", in.Title, in.Mood)
			if in.Tempo > 0 {
				desc += fmt.Sprintf(" at %d bpm", in.Tempo)
			}
			if in.Key != "" {
				desc += fmt.Sprintf(" in %s", in.Key)
			}
			return desc + "."
		},
	},
	{
		Name: "generic",
		When: rules.Always[DescribeInput],
		Then: func(in DescribeInput) string {
			return fmt.Sprintf("Day %d: %s", in.Day, in.Title)
		},
	},
}

// Describe produces the release description via the priority chain.
func Describe(in DescribeInput) string {
	out, _, _ := describeChain.Eval(in)
	return out
}
