// Package profile derives a user profile from raw skills, experience text
// and interests: skill categories, experience tier, strengths, candidate
// career domains and a completeness score.
package profile

import (
	"sort"
	"strings"

	"career-coach/internal/domain/taxonomy"
)

const (
	TierEntry  = "Entry"
	TierMid    = "Mid"
	TierSenior = "Senior"
)

const (
	experienceNotSpecified = "Not specified"

	completenessComplete = "Complete"
	completenessGood     = "Good"
	completenessNeeds    = "Needs improvement"
)

type Completeness struct {
	Score       int               `json:"score"`
	Level       string            `json:"level"`
	Details     map[string]string `json:"details"`
	Suggestions []string          `json:"suggestions"`
}

type Profile struct {
	Skills         []string            `json:"skills"`
	ExperienceText string              `json:"experience"`
	Interests      []string            `json:"interests"`
	Categories     map[string][]string `json:"skill_categories"`
	Tier           string              `json:"experience_level"`
	Strengths      []string            `json:"strengths"`
	Domains        []string            `json:"recommended_domains"`
	Completeness   Completeness        `json:"profile_completeness"`
}

// Analyze never fails: inputs are normalized defensively and every derived
// field has a defined default.
func Analyze(skills []string, experienceText string, interests []string) Profile {
	deduped := taxonomy.Dedupe(skills)
	cats := taxonomy.Categorize(deduped)
	strengths := identifyStrengths(cats)

	return Profile{
		Skills:         deduped,
		ExperienceText: strings.TrimSpace(experienceText),
		Interests:      interests,
		Categories:     cats,
		Tier:           ParseTier(experienceText),
		Strengths:      strengths,
		Domains:        identifyDomains(cats),
		Completeness:   calculateCompleteness(deduped, experienceText, interests),
	}
}

var (
	entryTerms  = []string{"0-1", "0", "1 year", "entry", "junior", "graduate"}
	midTerms    = []string{"2", "3", "4", "2-4", "mid"}
	seniorTerms = []string{"5", "6", "7", "8", "5+", "senior"}
)

// ParseTier classifies free-form experience text into Entry/Mid/Senior by
// keyword match. Absent text is Entry; text that matches no keyword is Mid.
func ParseTier(experienceText string) string {
	exp := strings.ToLower(strings.TrimSpace(experienceText))
	if exp == "" || exp == strings.ToLower(experienceNotSpecified) {
		return TierEntry
	}

	if containsAny(exp, entryTerms) {
		return TierEntry
	}
	if containsAny(exp, midTerms) {
		return TierMid
	}
	if containsAny(exp, seniorTerms) {
		return TierSenior
	}
	return TierMid
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}

// identifyStrengths ranks categories by skill count descending and keeps up
// to the top three with at least two skills. Ties preserve taxonomy order.
func identifyStrengths(cats map[string][]string) []string {
	names := make([]string, 0, len(cats))
	for _, cat := range taxonomy.CategoryNames() {
		if _, ok := cats[cat]; ok {
			names = append(names, cat)
		}
	}
	sort.SliceStable(names, func(i, j int) bool {
		return len(cats[names[i]]) > len(cats[names[j]])
	})

	strengths := []string{}
	for _, cat := range names {
		if len(cats[cat]) >= 2 && len(strengths) < 3 {
			strengths = append(strengths, cat)
		}
	}
	return strengths
}

func identifyDomains(cats map[string][]string) []string {
	var domains []string

	_, hasFrontend := cats["Frontend"]
	_, hasBackend := cats["Backend"]
	if (hasFrontend || hasBackend) && len(cats) >= 2 {
		domains = append(domains, "Software Development")
	}

	_, hasDataScience := cats["Data Science"]
	_, hasDatabase := cats["Database"]
	if hasDataScience || hasDatabase {
		domains = append(domains, "Data Science")
	}

	_, hasCloud := cats["Cloud"]
	_, hasDevOps := cats["DevOps"]
	if hasCloud || hasDevOps {
		domains = append(domains, "Cloud & DevOps")
	}

	// A spread over three or more categories signals a broad background.
	if len(cats) >= 3 {
		domains = append(domains, "Product & Management")
	}

	if len(domains) == 0 {
		domains = []string{"Software Development"}
	}
	return domains
}

func calculateCompleteness(skills []string, experienceText string, interests []string) Completeness {
	score := 0
	details := make(map[string]string)

	switch {
	case len(skills) >= 5:
		score += 40
		details["skills"] = completenessComplete
	case len(skills) >= 3:
		score += 25
		details["skills"] = completenessGood
	default:
		score += 10
		details["skills"] = completenessNeeds
	}

	exp := strings.TrimSpace(experienceText)
	if exp != "" && exp != experienceNotSpecified {
		score += 30
		details["experience"] = completenessComplete
	} else {
		details["experience"] = "Missing"
	}

	if len(interests) > 0 {
		score += 20
		details["interests"] = completenessComplete
	} else {
		details["interests"] = "Missing"
	}

	// Portfolio signal is not modeled; grant the partial baseline.
	score += 5
	details["portfolio"] = "Partial"

	level := completenessNeeds
	if score >= 80 {
		level = completenessComplete
	} else if score >= 60 {
		level = completenessGood
	}

	return Completeness{
		Score:       score,
		Level:       level,
		Details:     details,
		Suggestions: improvementSuggestions(details),
	}
}

func improvementSuggestions(details map[string]string) []string {
	suggestions := []string{}
	if details["skills"] == completenessNeeds {
		suggestions = append(suggestions, "Add more technical skills to your profile")
	}
	if details["experience"] == "Missing" {
		suggestions = append(suggestions, "Specify your years of experience")
	}
	if details["interests"] == "Missing" {
		suggestions = append(suggestions, "Add career interests to get better recommendations")
	}
	if details["portfolio"] == "Missing" {
		suggestions = append(suggestions, "Consider adding portfolio projects or GitHub profile")
	}
	return suggestions
}
