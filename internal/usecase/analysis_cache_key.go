package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"career-intel/internal/ingestion"
)

type analysisCacheKeyInput struct {
	Skills     []string `json:"skills"`
	Experience int      `json:"experience"`
	TargetRole string   `json:"target_role"`
}

// analysisCacheKey derives a stable key from the normalized request:
// tokenized, sorted skills so equivalent inputs share an entry.
func analysisCacheKey(params AnalyzeParams) string {
	skills := ingestion.Tokenize(params.SkillsText)
	sort.Strings(skills)

	in := analysisCacheKeyInput{
		Skills:     skills,
		Experience: params.ExperienceYears,
		TargetRole: strings.TrimSpace(params.TargetRole),
	}

	b, err := json.Marshal(in)
	if err != nil {
		return "analysis:v1:unkeyed"
	}
	sum := sha256.Sum256(b)
	return "analysis:v1:" + hex.EncodeToString(sum[:])
}
