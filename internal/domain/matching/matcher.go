// Package matching computes skill-overlap matches between a user's skill
// set and a target skill set (a job's requirements or a career path's
// prerequisites). All comparisons are case-insensitive.
package matching

import (
	"math"

	"career-coach/internal/domain/taxonomy"
)

type Result struct {
	MatchPercentage int      `json:"match_percentage"`
	Matching        []string `json:"matching_skills"`
	Missing         []string `json:"missing_skills"`
	UserHas         int      `json:"user_has"`
	TotalRequired   int      `json:"total_required"`
}

// Match intersects the user's skills with the target set. An empty target is
// vacuously fully matched (100). Output ordering follows the target set.
func Match(userSkills, targetSkills []string) Result {
	userSet := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		if key := taxonomy.Normalize(s); key != "" {
			userSet[key] = struct{}{}
		}
	}

	target := taxonomy.Dedupe(targetSkills)
	matching := []string{}
	missing := []string{}
	for _, s := range target {
		if _, ok := userSet[taxonomy.Normalize(s)]; ok {
			matching = append(matching, s)
		} else {
			missing = append(missing, s)
		}
	}

	pct := 100
	if len(target) > 0 {
		pct = int(math.Round(float64(len(matching)) / float64(len(target)) * 100))
	}

	return Result{
		MatchPercentage: pct,
		Matching:        matching,
		Missing:         missing,
		UserHas:         len(matching),
		TotalRequired:   len(target),
	}
}
