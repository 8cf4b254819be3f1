package roadmap

import "sort"

// Bucket labels, in learning order.
var monthLabels = [3]string{"Month 1", "Month 2", "Month 3"}

// Roadmap is an ordered learning plan: each bucket holds the skills to
// pick up in that period.
type Roadmap struct {
	Buckets []Bucket `json:"buckets"`
}

type Bucket struct {
	Label  string   `json:"label"`
	Skills []string `json:"skills"`
}

// Plan distributes gap skills round-robin over three sequential buckets:
// dedupe, sort for determinism, then index i goes to bucket i mod 3.
// There is no weighting by difficulty or prerequisites. An empty gap
// short-circuits to a roadmap with no buckets.
func Plan(gapSkills map[string]struct{}) Roadmap {
	if len(gapSkills) == 0 {
		return Roadmap{Buckets: []Bucket{}}
	}

	skills := make([]string, 0, len(gapSkills))
	for s := range gapSkills {
		skills = append(skills, s)
	}
	sort.Strings(skills)

	buckets := make([]Bucket, len(monthLabels))
	for i, label := range monthLabels {
		buckets[i] = Bucket{Label: label, Skills: []string{}}
	}
	for i, s := range skills {
		b := i % len(buckets)
		buckets[b].Skills = append(buckets[b].Skills, s)
	}
	return Roadmap{Buckets: buckets}
}
