package profile

// Vector is a fixed-dimensionality semantic centroid of a skill set.
// Dimensionality is constant process-wide and agreed with the trained
// artifacts; an empty skill set is represented by the zero vector.
type Vector []float64

func ZeroVector(dim int) Vector {
	if dim <= 0 {
		return Vector{}
	}
	return make(Vector, dim)
}

func (v Vector) IsZero() bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// JobRecord is one ingested job posting. Immutable once ingested; the
// training corpus is the full set of records.
type JobRecord struct {
	Title      string   `json:"title"`
	Skills     []string `json:"skills"`
	Salary     float64  `json:"salary"`
	Experience int      `json:"experience"`
}

// RoleProfile is the trained prototype for one role category. Rebuilt
// wholesale on every training run, read-only to the serving path.
type RoleProfile struct {
	Role        string   `json:"role"`
	Vector      Vector   `json:"vector"`
	AvgSalary   float64  `json:"avg_salary"`
	DemandLevel string   `json:"demand_level"`
	CoreSkills  []string `json:"core_skills"`
}

// Demand levels emitted by the profile builder. The builder never emits a
// low tier; group sizes below the threshold classify as medium.
const (
	DemandMedium = "Medium"
	DemandHigh   = "High"
)

// UserProfile is request-scoped and never persisted.
type UserProfile struct {
	RawSkills  string
	Skills     []string
	Vector     Vector
	Experience int
}

// MatchResult is one ranked role for a user vector.
type MatchResult struct {
	Role        string  `json:"role"`
	MatchPct    int     `json:"match_pct"`
	AvgSalary   float64 `json:"avg_salary"`
	DemandLevel string  `json:"demand_level"`
}
