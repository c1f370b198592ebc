package career

import (
	"sort"

	"career-coach/internal/domain/matching"
)

// QuickPath is the lightweight career-path card served by the public
// career-paths endpoint, scored purely on skill overlap.
type QuickPath struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	Timeline       string   `json:"timeline"`
	SalaryRange    string   `json:"salary_range"`
	Icon           string   `json:"icon"`
}

type QuickPathMatch struct {
	QuickPath
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchPercentage int      `json:"match_percentage"`
}

var quickPaths = []QuickPath{
	{
		ID:             "path-frontend",
		Title:          "Frontend Developer",
		Description:    "Specialize in user interface development with modern frameworks",
		RequiredSkills: []string{"HTML", "CSS", "JavaScript", "React", "TypeScript"},
		Timeline:       "6-12 months",
		SalaryRange:    "$60,000 - $120,000",
		Icon:           "monitor",
	},
	{
		ID:             "path-backend",
		Title:          "Backend Developer",
		Description:    "Focus on server-side development and API design",
		RequiredSkills: []string{"Python", "Node.js", "SQL", "MongoDB", "Express.js"},
		Timeline:       "8-14 months",
		SalaryRange:    "$70,000 - $130,000",
		Icon:           "server",
	},
	{
		ID:             "path-fullstack",
		Title:          "Full Stack Developer",
		Description:    "Master both frontend and backend technologies",
		RequiredSkills: []string{"React", "Node.js", "Python", "SQL", "Git", "Docker"},
		Timeline:       "12-18 months",
		SalaryRange:    "$80,000 - $140,000",
		Icon:           "layers",
	},
	{
		ID:             "path-data",
		Title:          "Data Scientist",
		Description:    "Analyze data and build machine learning models",
		RequiredSkills: []string{"Python", "Machine Learning", "SQL", "Statistics", "Pandas"},
		Timeline:       "10-16 months",
		SalaryRange:    "$90,000 - $150,000",
		Icon:           "trending-up",
	},
}

// MatchQuickPaths scores every quick path against the user's skills and
// returns all of them sorted by match percentage descending (stable).
func MatchQuickPaths(userSkills []string) []QuickPathMatch {
	out := make([]QuickPathMatch, 0, len(quickPaths))
	for _, qp := range quickPaths {
		res := matching.Match(userSkills, qp.RequiredSkills)
		out = append(out, QuickPathMatch{
			QuickPath:       qp,
			MatchingSkills:  res.Matching,
			MissingSkills:   res.Missing,
			MatchPercentage: res.MatchPercentage,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MatchPercentage > out[j].MatchPercentage
	})
	return out
}
