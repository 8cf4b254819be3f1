package ingestion

import "strings"

// knownSkills is the technical skill vocabulary used to filter noise out
// of raw posting tags. Skill identity downstream is case-insensitive token
// equality against this set; there is no stemming or synonym resolution.
var knownSkills = map[string]struct{}{}

func init() {
	for _, s := range []string{
		// languages
		"python", "java", "c++", "c#", "javascript", "typescript", "golang", "rust", "swift", "kotlin", "php", "ruby", "scala", "r", "c",
		// frameworks and libraries
		"react", "angular", "vue", "next.js", "node.js", "django", "flask", "fastapi", "spring boot", "ruby on rails", "laravel",
		"tensorflow", "pytorch", "scikit-learn", "keras", "pandas", "numpy", "matplotlib", "seaborn", "nltk", "spacy", "opencv",
		"express.js", "graphql", "redux", "jquery", "bootstrap", "tailwind",
		// data and databases
		"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch", "cassandra", "dynamodb", "oracle", "sql server",
		"firebase", "snowflake", "bigquery", "redshift", "spark", "hadoop", "kafka", "airflow", "tableau", "power bi", "looker",
		// devops and cloud
		"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "gitlab ci", "github actions", "circleci", "terraform", "ansible",
		"linux", "bash", "git", "nginx", "apache", "prometheus", "grafana", "elk stack", "splunk", "datadog",
		// algorithms and practices
		"machine learning", "deep learning", "nlp", "computer vision", "data structures", "algorithms", "system design",
		"microservices", "rest api", "soap", "agile", "scrum", "jira",
	} {
		knownSkills[s] = struct{}{}
	}
}

// FilterSkills keeps only vocabulary skills, lowercased. The result may be
// empty; an empty skill list is legal corpus input.
func FilterSkills(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if _, ok := knownSkills[t]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Tokenize splits a raw comma-separated skill string into trimmed
// lowercase tokens, dropping blanks. This is the serving-path equivalent
// of the ingestion normalizer; it deliberately does not whitelist, since a
// user may hold skills the corpus never saw.
func Tokenize(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
