package gap

import "strings"

// Missing returns the target skills the user does not have, as a set.
// Both sides are lowercased first; skill identity is case-insensitive
// token equality. An empty result means the user already covers the
// target role, which is a valid outcome rather than an edge case.
// Ordering of the result is up to the caller.
func Missing(userSkills, targetSkills []string) map[string]struct{} {
	user := toSet(userSkills)

	missing := make(map[string]struct{})
	for _, s := range targetSkills {
		s = normalize(s)
		if s == "" {
			continue
		}
		if _, ok := user[s]; !ok {
			missing[s] = struct{}{}
		}
	}
	return missing
}

func toSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = normalize(s)
		if s == "" {
			continue
		}
		set[s] = struct{}{}
	}
	return set
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
