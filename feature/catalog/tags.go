package catalog

// MaxTags caps the derived tag list.
const MaxTags = 5

// placeholderTags label releases with no enrichment data at all.
var placeholderTags = []string{"poetry", "sonic", "narrative"}

// BuildTags derives the tag list from the first two mood words and the first
// genre, deduplicated case-sensitively and capped at MaxTags. When nothing can
// be derived the placeholder set is used.
func BuildTags(moods, genres []string) []string {
	tags := make([]string, 0, MaxTags)
	seen := make(map[string]struct{})

	add := func(v string) {
		if v == "" || len(tags) >= MaxTags {
			return
		}
		if _, dup := seen[v]; dup {
			return
		}
		seen[v] = struct{}{}
		tags = append(tags, v)
	}

	for i, m := range moods {
		if i >= 2 {
			break
		}
		add(m)
	}
	if len(genres) > 0 {
		add(genres[0])
	}

	if len(tags) == 0 {
		return append([]string(nil), placeholderTags...)
	}
	return tags
}
