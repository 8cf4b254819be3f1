package demand

import (
	"math"
	"strings"

	"career-intel/internal/domain/profile"
)

// NeutralScore is returned for tokens the training corpus never saw. A
// missing skill is unknown, not undesirable, so lookups default to the
// middle of the range instead of zero.
const NeutralScore = 50

// Map holds a popularity score in [0,100] per skill token.
type Map map[string]int

// Compute derives a demand map from the full training corpus. Counts are
// normalized logarithmically so the most frequent skill scores 100 while
// mid-frequency skills still land well above zero:
//
//	score = floor(ln(c+1) / ln(max+1) * 100)
//
// An empty corpus yields an empty map.
func Compute(records []profile.JobRecord) Map {
	counts := make(map[string]int)
	for _, r := range records {
		for _, s := range r.Skills {
			s = strings.ToLower(strings.TrimSpace(s))
			if s == "" {
				continue
			}
			counts[s]++
		}
	}
	if len(counts) == 0 {
		return Map{}
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	logMax := math.Log(float64(maxCount + 1))
	m := make(Map, len(counts))
	for skill, c := range counts {
		m[skill] = int(math.Log(float64(c+1)) / logMax * 100)
	}
	return m
}

// Score looks up a token case-insensitively, falling back to NeutralScore
// for unknown tokens. It never fails.
func (m Map) Score(token string) int {
	if s, ok := m[strings.ToLower(strings.TrimSpace(token))]; ok {
		return s
	}
	return NeutralScore
}
