package resume

import (
	"fmt"
	"regexp"
	"strings"

	"career-coach/internal/domain/taxonomy"
)

const NotSpecified = "Not specified"

// Parsed holds the structured fields extracted from resume text.
type Parsed struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
}

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	experienceRes = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*\+?\s*years?\s*of\s*experience`),
		regexp.MustCompile(`(\d+)\s*years?\s*experience`),
		regexp.MustCompile(`experience\s*:?\s*(\d+)\s*years?`),
		regexp.MustCompile(`\((\d+)\s*years?\)`),
		regexp.MustCompile(`(\d+)\s*years?`),
	}

	educationKeywords = []string{
		"bachelor", "master", "phd", "doctorate", "associate",
		"computer science", "software engineering", "information technology",
		"electrical engineering", "mathematics", "data science",
	}
)

// skillPatterns matches taxonomy skills on word boundaries so "Java" does
// not fire inside "JavaScript" and single-letter skills like "R" only match
// standalone tokens. Built once at init.
var skillPatterns = func() []struct {
	skill string
	re    *regexp.Regexp
} {
	all := taxonomy.All()
	out := make([]struct {
		skill string
		re    *regexp.Regexp
	}, 0, len(all))
	for _, s := range all {
		pattern := `(?i)(?:^|[^\w+#.])` + regexp.QuoteMeta(s) + `(?:[^\w+#.]|$)`
		out = append(out, struct {
			skill string
			re    *regexp.Regexp
		}{skill: s, re: regexp.MustCompile(pattern)})
	}
	return out
}()

// Parse extracts contact info, skills, experience and education from plain
// resume text. It never fails; absent fields come back empty or as
// "Not specified".
func Parse(text string) Parsed {
	return Parsed{
		Name:       extractName(text),
		Email:      emailRe.FindString(text),
		Phone:      strings.TrimSpace(phoneRe.FindString(text)),
		Skills:     ExtractSkills(text),
		Experience: extractExperience(text),
		Education:  extractEducation(text),
	}
}

// extractName takes the first two words of the first non-empty line, the
// usual resume header convention.
func extractName(text string) string {
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		words := strings.Fields(strings.TrimSpace(line))
		if len(words) >= 2 {
			return words[0] + " " + words[1]
		}
		if len(words) > 0 {
			return ""
		}
	}
	return ""
}

// ExtractSkills scans the text for taxonomy skills, returning canonical
// casing in taxonomy order.
func ExtractSkills(text string) []string {
	found := []string{}
	for _, sp := range skillPatterns {
		if sp.re.MatchString(text) {
			found = append(found, sp.skill)
		}
	}
	return found
}

func extractExperience(text string) string {
	lower := strings.ToLower(text)
	for _, re := range experienceRes {
		if m := re.FindStringSubmatch(lower); m != nil {
			return fmt.Sprintf("%s years", m[1])
		}
	}
	return NotSpecified
}

func extractEducation(text string) string {
	lower := strings.ToLower(text)
	var found []string
	for _, kw := range educationKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, titleCase(kw))
		}
	}
	if len(found) == 0 {
		return NotSpecified
	}
	return strings.Join(found, ", ")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
