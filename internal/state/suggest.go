package state

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance is the largest edit distance, relative to the longer
// of the two names, still considered a typo.
const maxSuggestDistance = 0.4

// Suggest returns the known team name closest to query, or "" when nothing
// is close enough
func (s Screen) Suggest(query string) string {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return ""
	}

	best := ""
	bestScore := maxSuggestDistance
	for _, t := range s.AllTeams {
		name := strings.ToLower(t.Name)
		longest := len([]rune(name))
		if n := len([]rune(q)); n > longest {
			longest = n
		}
		if longest == 0 {
			continue
		}
		score := float64(levenshtein.ComputeDistance(q, name)) / float64(longest)
		if score < bestScore {
			best = t.Name
			bestScore = score
		}
	}
	return best
}
