package matching

import (
	"math"
	"sort"

	"career-intel/internal/domain/profile"
)

const topN = 3

// Cosine returns the cosine similarity between two vectors. Mismatched
// lengths or a zero-norm side score 0; this keeps empty user profiles from
// producing NaN percentages downstream.
func Cosine(a, b profile.Vector) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// ScoreRole scores a user vector against one named role profile as a
// percentage. Exposed separately from Match so an explicitly targeted role
// outside the global top results can still be scored.
func ScoreRole(user profile.Vector, role profile.RoleProfile) int {
	return pct(Cosine(user, role.Vector))
}

// Match ranks all role profiles against the user vector by cosine
// similarity and returns the top 3, descending. Ties keep the original
// profile order. An empty user vector or empty profile list yields an
// empty result, never an error.
func Match(user profile.Vector, roles []profile.RoleProfile) []profile.MatchResult {
	if len(user) == 0 || len(roles) == 0 {
		return []profile.MatchResult{}
	}

	type scored struct {
		idx int
		sim float64
	}
	scores := make([]scored, 0, len(roles))
	for i, r := range roles {
		scores = append(scores, scored{idx: i, sim: Cosine(user, r.Vector)})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].sim > scores[j].sim
	})

	n := topN
	if len(scores) < n {
		n = len(scores)
	}

	out := make([]profile.MatchResult, 0, n)
	for _, s := range scores[:n] {
		r := roles[s.idx]
		out = append(out, profile.MatchResult{
			Role:        r.Role,
			MatchPct:    pct(s.sim),
			AvgSalary:   r.AvgSalary,
			DemandLevel: r.DemandLevel,
		})
	}
	return out
}

func pct(sim float64) int {
	return int(math.Round(sim * 100))
}
