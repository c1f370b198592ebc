package career

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"career-coach/internal/domain/matching"
	"career-coach/internal/domain/profile"
)

// Recommendation is the explicit composition of a catalog template with the
// per-request computed fields. Never persisted.
type Recommendation struct {
	Path           PathTemplate `json:"path"`
	Domain         string       `json:"domain"`
	Score          int          `json:"recommendation_score"`
	FitExplanation string       `json:"fit_explanation"`
	NextSteps      []string     `json:"next_steps"`
}

// Score computes how well a path fits the profile: the path's market demand
// plus a skill-overlap bonus (up to 30), an experience/difficulty
// compatibility term and a growth-potential bonus, clamped to [0, 100].
func Score(path PathTemplate, p profile.Profile) int {
	score := float64(path.MarketDemand)

	if len(path.CurrentSkillsNeeded) > 0 {
		res := matching.Match(p.Skills, path.CurrentSkillsNeeded)
		score += float64(res.UserHas) / float64(res.TotalRequired) * 30
	}

	score += float64(experienceCompatibility(p.Tier, path.Difficulty))
	score += float64(growthBonus(path.GrowthPotential))

	v := int(math.Round(score))
	if v > 100 {
		v = 100
	}
	if v < 0 {
		v = 0
	}
	return v
}

// experienceCompatibility maps (tier, difficulty) pairs to a fixed bonus.
// Pairs outside the table get the neutral default.
func experienceCompatibility(tier, difficulty string) int {
	switch tier + "/" + difficulty {
	case "Entry/Easy":
		return 20
	case "Entry/Medium":
		return 10
	case "Entry/Hard":
		return -10
	case "Mid/Easy":
		return 15
	case "Mid/Medium":
		return 20
	case "Mid/Hard":
		return 10
	case "Senior/Easy":
		return 10
	case "Senior/Medium":
		return 15
	case "Senior/Hard":
		return 20
	default:
		return 10
	}
}

func growthBonus(growthPotential string) int {
	switch growthPotential {
	case "Very High":
		return 15
	case "High":
		return 10
	case "Medium":
		return 5
	case "Low":
		return 0
	default:
		return 5
	}
}

// Recommend scores every path in every candidate domain of the profile and
// returns the top recommendations sorted by score descending. The sort is
// stable: ties keep domain order, then catalog order within a domain.
func Recommend(p profile.Profile, limit int) []Recommendation {
	if limit <= 0 {
		limit = 5
	}

	out := []Recommendation{}
	for _, domain := range p.Domains {
		for _, path := range PathsForDomain(domain) {
			out = append(out, Recommendation{
				Path:           path,
				Domain:         domain,
				Score:          Score(path, p),
				FitExplanation: fitExplanation(path, p),
				NextSteps:      nextSteps(path, p),
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func fitExplanation(path PathTemplate, p profile.Profile) string {
	var explanations []string

	res := matching.Match(p.Skills, path.CurrentSkillsNeeded)
	if res.UserHas > 0 {
		explanations = append(explanations, fmt.Sprintf(
			"You already have %d out of %d required skills", res.UserHas, res.TotalRequired))
	}

	if p.Tier == profile.TierSenior && path.Difficulty == "High" {
		explanations = append(explanations, "Your senior experience level aligns well with this challenging role")
	} else if p.Tier == profile.TierMid && path.Difficulty == "Medium" {
		explanations = append(explanations, "This role matches your current experience level perfectly")
	}

	if path.MarketDemand >= 85 {
		explanations = append(explanations, "This role is in very high market demand")
	}

	if len(explanations) == 0 {
		return "This role matches your technical background."
	}
	return strings.Join(explanations, ". ") + "."
}

func nextSteps(path PathTemplate, p profile.Profile) []string {
	var steps []string

	develop := path.SkillsToDevelop
	if len(develop) > 3 {
		develop = develop[:3]
	}
	if len(develop) > 0 {
		steps = append(steps, fmt.Sprintf("Focus on learning %s", strings.Join(develop, ", ")))
	}

	if path.Timeline != "" {
		steps = append(steps, fmt.Sprintf("Plan for %s to fully transition", path.Timeline))
	}

	switch p.Tier {
	case profile.TierEntry:
		steps = append(steps, "Build practical experience through projects and internships")
	case profile.TierMid:
		steps = append(steps, "Take on more complex projects to demonstrate advanced skills")
	}

	steps = append(steps,
		"Connect with professionals in this field on LinkedIn",
		"Consider relevant certifications or courses",
	)
	return steps
}
