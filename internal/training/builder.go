package training

import (
	"fmt"
	"math"
	"sort"

	"career-intel/internal/domain/profile"
	"career-intel/internal/taxonomy"
)

// DefaultHighDemandThreshold: categories with more member records than
// this classify as high demand; everything else is medium. The rule never
// emits a low tier.
const DefaultHighDemandThreshold = 15

// BuildRoleProfiles aggregates the corpus into one prototype per role
// category. vectors[i] must be the mean embedding of records[i]. The
// profile vector is the mean of the member records' mean vectors, which
// weights each job record equally no matter how many skills it lists.
// Core skills are taken from the first-encountered member of the group
// and are representative, not canonical. Output is sorted by role name.
func BuildRoleProfiles(records []profile.JobRecord, vectors []profile.Vector, highDemandThreshold int) ([]profile.RoleProfile, error) {
	if len(records) != len(vectors) {
		return nil, fmt.Errorf("records/vectors length mismatch: %d vs %d", len(records), len(vectors))
	}
	if highDemandThreshold <= 0 {
		highDemandThreshold = DefaultHighDemandThreshold
	}

	type group struct {
		sum        profile.Vector
		count      int
		salarySum  float64
		coreSkills []string
	}
	groups := make(map[string]*group)

	for i, r := range records {
		category := taxonomy.Categorize(r.Title)
		g, ok := groups[category]
		if !ok {
			g = &group{sum: make(profile.Vector, len(vectors[i])), coreSkills: r.Skills}
			groups[category] = g
		}
		if len(vectors[i]) != len(g.sum) {
			return nil, fmt.Errorf("category %q: inconsistent vector dimensions %d vs %d", category, len(vectors[i]), len(g.sum))
		}
		for j, v := range vectors[i] {
			g.sum[j] += v
		}
		g.count++
		g.salarySum += r.Salary
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]profile.RoleProfile, 0, len(names))
	for _, name := range names {
		g := groups[name]
		vec := make(profile.Vector, len(g.sum))
		for j, v := range g.sum {
			vec[j] = v / float64(g.count)
		}

		level := profile.DemandMedium
		if g.count > highDemandThreshold {
			level = profile.DemandHigh
		}

		out = append(out, profile.RoleProfile{
			Role:        name,
			Vector:      vec,
			AvgSalary:   round1(g.salarySum / float64(g.count)),
			DemandLevel: level,
			CoreSkills:  g.coreSkills,
		})
	}
	return out, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
