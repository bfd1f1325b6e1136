package filter

import "strings"

// SuggestDestinations returns destination names containing the query as a
// case-insensitive substring. Queries shorter than two runes yield no
// suggestions, matching the autocomplete behavior of the plan form.
func SuggestDestinations(names []string, query string) []string {
	if len([]rune(query)) < 2 {
		return []string{}
	}

	q := strings.ToLower(query)
	matches := make([]string, 0, len(names))
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), q) {
			matches = append(matches, name)
		}
	}
	return matches
}
