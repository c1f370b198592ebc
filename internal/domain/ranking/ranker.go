// Package ranking filters and ranks job postings against a user's skill
// set. Filtering runs before scoring; ranking is a stable descending sort on
// the computed match score.
package ranking

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"career-coach/internal/domain/job"
	"career-coach/internal/domain/matching"
)

const (
	// Score assigned when a posting lists no requirements.
	noRequirementsScore = 50

	bonusPerExtraSkill = 5
	maxBonus           = 20
)

// Sentinel filter values that disable the corresponding predicate.
const (
	AllLocations  = "All Locations"
	AllExperience = "All Experience"
)

type Filters struct {
	Location   string
	Experience string
	MinSalary  int
}

type RankedPosting struct {
	job.Posting
	MatchScore int `json:"match_score"`
}

// Score computes the match score for one posting: the requirement overlap
// percentage plus a capped bonus for user skills beyond the requirements,
// clamped to 100. No requirements yields the neutral default.
func Score(userSkills, requirements []string) int {
	if len(requirements) == 0 {
		return noRequirementsScore
	}

	res := matching.Match(userSkills, requirements)

	extra := countExtraSkills(userSkills, requirements)
	bonus := bonusPerExtraSkill * extra
	if bonus > maxBonus {
		bonus = maxBonus
	}

	score := res.MatchPercentage + bonus
	if score > 100 {
		score = 100
	}
	return score
}

func countExtraSkills(userSkills, requirements []string) int {
	reqSet := make(map[string]struct{}, len(requirements))
	for _, r := range requirements {
		reqSet[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}
	seen := make(map[string]struct{}, len(userSkills))
	extra := 0
	for _, s := range userSkills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := reqSet[key]; !ok {
			extra++
		}
	}
	return extra
}

// Rank scores every posting and sorts descending. The sort is stable so
// postings with equal scores keep their original relative order.
func Rank(postings []job.Posting, userSkills []string) []RankedPosting {
	out := make([]RankedPosting, 0, len(postings))
	for _, p := range postings {
		out = append(out, RankedPosting{Posting: p, MatchScore: Score(userSkills, p.Requirements)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchScore > out[j].MatchScore
	})
	return out
}

// Apply filters postings as a conjunction of independent predicates. "All"
// sentinel values and zero MinSalary are no-ops.
func Apply(postings []job.Posting, f Filters) []job.Posting {
	out := make([]job.Posting, 0, len(postings))
	for _, p := range postings {
		if !matchesLocation(p, f.Location) {
			continue
		}
		if !matchesExperience(p, f.Experience) {
			continue
		}
		if f.MinSalary > 0 && ExtractMinSalary(p.Salary) < f.MinSalary {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesLocation(p job.Posting, location string) bool {
	location = strings.TrimSpace(location)
	if location == "" || location == AllLocations {
		return true
	}
	loc := strings.ToLower(location)
	if strings.Contains(strings.ToLower(p.Location), loc) {
		return true
	}
	return loc == "remote" && p.Remote
}

func matchesExperience(p job.Posting, experience string) bool {
	experience = strings.TrimSpace(experience)
	if experience == "" || experience == AllExperience {
		return true
	}
	want := strings.TrimSuffix(strings.ToLower(experience), " level")
	have := strings.TrimSuffix(strings.ToLower(p.ExperienceLevel), " level")
	// "Senior" matches "Senior-level" style variants.
	return strings.TrimSuffix(have, "-level") == strings.TrimSuffix(want, "-level")
}

var salaryNumberRe = regexp.MustCompile(`\d+`)

// ExtractMinSalary pulls the first numeric token out of a free-text salary
// string. Values under 1000 are treated as "k" shorthand. Unparseable
// strings yield 0 and therefore never pass a minimum-salary filter.
func ExtractMinSalary(salary string) int {
	cleaned := strings.ReplaceAll(salary, ",", "")
	tok := salaryNumberRe.FindString(cleaned)
	if tok == "" {
		return 0
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0
	}
	if v < 1000 {
		v *= 1000
	}
	return v
}
