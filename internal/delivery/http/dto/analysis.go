package dto

type AnalysisRequest struct {
	Skills          string `json:"skills"`
	ExperienceYears int    `json:"experience_years"`
	TargetRole      string `json:"target_role"`
}

type SalaryRangeResponse struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

type MatchResponse struct {
	Role        string  `json:"role"`
	MatchPct    int     `json:"match_pct"`
	AvgSalary   float64 `json:"avg_salary"`
	DemandLevel string  `json:"demand_level"`
}

type TargetRoleResponse struct {
	Role        string  `json:"role"`
	MatchPct    int     `json:"match_pct"`
	AvgSalary   float64 `json:"avg_salary"`
	DemandLevel string  `json:"demand_level"`
}

type RoadmapBucketResponse struct {
	Label  string   `json:"label"`
	Skills []string `json:"skills"`
}

type AnalysisResponse struct {
	SalaryRange SalaryRangeResponse     `json:"salary_range"`
	Matches     []MatchResponse         `json:"matches"`
	Target      *TargetRoleResponse     `json:"target,omitempty"`
	GapSkills   []string                `json:"gap_skills"`
	Roadmap     []RoadmapBucketResponse `json:"roadmap"`
	SkillDemand map[string]int          `json:"skill_demand"`
}
