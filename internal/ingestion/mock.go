package ingestion

import (
	"math/rand"

	"career-intel/internal/domain/profile"
)

// roleTemplate seeds the synthetic corpus: a role with its typical skill
// set and salary band.
type roleTemplate struct {
	role      string
	skills    []string
	minSalary float64
	maxSalary float64
}

var roleTemplates = []roleTemplate{
	{"Frontend Engineer", []string{"react", "javascript", "html", "css", "typescript", "git", "redux"}, 5, 18},
	{"Backend Engineer", []string{"python", "django", "sql", "docker", "aws", "redis", "fastapi"}, 6, 22},
	{"Machine Learning Engineer", []string{"python", "machine learning", "tensorflow", "pytorch", "scikit-learn", "docker", "aws"}, 8, 30},
	{"Data Scientist", []string{"python", "pandas", "numpy", "statistics", "sql", "visualization", "jupyter"}, 7, 25},
	{"DevOps Engineer", []string{"linux", "docker", "kubernetes", "aws", "terraform", "ci/cd", "bash"}, 7, 28},
	{"Product Manager", []string{"agile", "jira", "communication", "roadmap", "analytics", "user research"}, 10, 35},
	{"Full Stack Developer", []string{"react", "python", "node.js", "sql", "mongo", "aws", "git"}, 6, 24},
}

// GenerateMockCorpus produces n synthetic job records so a training run
// always has a corpus even when no live source is reachable. Each record
// samples a role template, keeps 70-100% of its skills, occasionally mixes
// in a skill from another role, and adds experience-correlated salary
// noise. Deterministic for a fixed seed.
func GenerateMockCorpus(n int, seed int64) []profile.JobRecord {
	if n <= 0 {
		n = 300
	}
	rng := rand.New(rand.NewSource(seed))

	records := make([]profile.JobRecord, 0, n)
	for i := 0; i < n; i++ {
		tpl := roleTemplates[rng.Intn(len(roleTemplates))]

		count := int(float64(len(tpl.skills)) * (0.7 + 0.3*rng.Float64()))
		if count < 1 {
			count = 1
		}
		picked := rng.Perm(len(tpl.skills))[:count]
		skills := make([]string, 0, count+1)
		seen := make(map[string]struct{}, count+1)
		for _, idx := range picked {
			s := tpl.skills[idx]
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			skills = append(skills, s)
		}

		if rng.Float64() > 0.7 {
			other := roleTemplates[rng.Intn(len(roleTemplates))]
			extra := other.skills[rng.Intn(len(other.skills))]
			if _, ok := seen[extra]; !ok {
				skills = append(skills, extra)
			}
		}

		experience := 1 + rng.Intn(8)
		salary := tpl.minSalary + rng.Float64()*(tpl.maxSalary-tpl.minSalary)
		salary += float64(experience) * 1.5

		records = append(records, profile.JobRecord{
			Title:      tpl.role,
			Skills:     skills,
			Salary:     salary,
			Experience: experience,
		})
	}
	return records
}
