package taxonomy

import "strings"

// Role category names. The taxonomy is closed: every job title resolves to
// exactly one of these, with CategoryDefault as the catch-all.
const (
	CategoryFrontend  = "Frontend Engineer"
	CategoryBackend   = "Backend Engineer"
	CategoryDataSci   = "Data Scientist"
	CategoryML        = "Machine Learning Engineer"
	CategoryDevOps    = "DevOps Engineer"
	CategoryProduct   = "Product Manager"
	CategoryFullStack = "Full Stack Developer"
	CategoryDefault   = "Software Engineer"
)

// Rule maps a title predicate to a category. Rules are evaluated in order
// and the first match wins, so rule order is part of the contract.
type Rule struct {
	Category string
	Matches  func(title string) bool
}

func anyOf(keywords ...string) func(string) bool {
	return func(title string) bool {
		for _, kw := range keywords {
			if strings.Contains(title, kw) {
				return true
			}
		}
		return false
	}
}

func allOf(keywords ...string) func(string) bool {
	return func(title string) bool {
		for _, kw := range keywords {
			if !strings.Contains(title, kw) {
				return false
			}
		}
		return true
	}
}

// rules in priority order. "data scientist" is checked before the machine
// learning rule so titles like "data science & ml" resolve consistently.
var rules = []Rule{
	{Category: CategoryFrontend, Matches: anyOf("front", "react", "vue", "web")},
	{Category: CategoryBackend, Matches: anyOf("back", "api", "node", "django")},
	{Category: CategoryDataSci, Matches: allOf("data", "scien")},
	{Category: CategoryML, Matches: anyOf("machine", "ai", "learning")},
	{Category: CategoryDevOps, Matches: anyOf("devops", "cloud", "sre")},
	{Category: CategoryProduct, Matches: anyOf("product")},
	{Category: CategoryFullStack, Matches: anyOf("full")},
}

// Categorize resolves a raw job title to its role category. Titles are
// lowercased before rule evaluation; unmatched titles fall into
// CategoryDefault.
func Categorize(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	for _, r := range rules {
		if r.Matches(t) {
			return r.Category
		}
	}
	return CategoryDefault
}

// Categories returns the full closed taxonomy, catch-all last.
func Categories() []string {
	out := make([]string, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.Category)
	}
	return append(out, CategoryDefault)
}

// IsKnown reports whether name is one of the taxonomy categories.
func IsKnown(name string) bool {
	for _, c := range Categories() {
		if c == name {
			return true
		}
	}
	return false
}
