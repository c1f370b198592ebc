// Package taxonomy holds the static skill taxonomy: a fixed mapping from
// technical category to the skills it recognizes. Loaded once at startup,
// immutable for the process lifetime. All comparisons run on the lower-cased
// form; the tables keep the canonical display casing.
package taxonomy

import "strings"

var categoryOrder = []string{
	"Frontend",
	"Backend",
	"Database",
	"Cloud",
	"Data Science",
	"DevOps",
	"Mobile",
}

var categories = map[string][]string{
	"Frontend":     {"React", "Vue.js", "Angular", "JavaScript", "TypeScript", "HTML", "CSS"},
	"Backend":      {"Node.js", "Python", "Java", "C#", "Django", "Flask", "Express"},
	"Database":     {"SQL", "MongoDB", "PostgreSQL", "MySQL", "Redis"},
	"Cloud":        {"AWS", "Azure", "GCP", "Docker", "Kubernetes"},
	"Data Science": {"Machine Learning", "Data Analysis", "Statistics", "R", "Pandas", "NumPy"},
	"DevOps":       {"Jenkins", "Git", "CI/CD", "Terraform", "Ansible"},
	"Mobile":       {"React Native", "Flutter", "iOS", "Android", "Swift", "Kotlin"},
}

// canonical maps the lower-cased form of every known skill back to its
// display casing, built once at init.
var canonical = func() map[string]string {
	m := make(map[string]string)
	for _, skills := range categories {
		for _, s := range skills {
			m[Normalize(s)] = s
		}
	}
	return m
}()

func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// Canonical returns the display casing for a known skill, or the trimmed
// input unchanged when the skill is not in the taxonomy.
func Canonical(skill string) string {
	if c, ok := canonical[Normalize(skill)]; ok {
		return c
	}
	return strings.TrimSpace(skill)
}

func CategoryNames() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

func CategorySkills(category string) []string {
	skills, ok := categories[category]
	if !ok {
		return nil
	}
	out := make([]string, len(skills))
	copy(out, skills)
	return out
}

// All returns every skill in the taxonomy in category order.
func All() []string {
	out := make([]string, 0, 64)
	for _, cat := range categoryOrder {
		out = append(out, categories[cat]...)
	}
	return out
}

// Dedupe removes duplicate skills (case-insensitively) preserving first
// occurrence order, restoring canonical casing where known.
func Dedupe(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := Normalize(s)
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, Canonical(s))
	}
	return out
}

// Categorize intersects the user's skills with each category, keeping only
// non-empty intersections. Category iteration follows the fixed table order
// so output is deterministic.
func Categorize(skills []string) map[string][]string {
	userSet := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if key := Normalize(s); key != "" {
			userSet[key] = struct{}{}
		}
	}

	out := make(map[string][]string)
	for _, cat := range categoryOrder {
		var found []string
		for _, s := range categories[cat] {
			if _, ok := userSet[Normalize(s)]; ok {
				found = append(found, s)
			}
		}
		if len(found) > 0 {
			out[cat] = found
		}
	}
	return out
}
