package usecase

import (
	"career-coach/internal/domain/market"
	"career-coach/internal/domain/profile"
	"career-coach/internal/domain/taxonomy"
)

type SkillProfile struct {
	TotalSkills       int    `json:"total_skills"`
	CategoriesCovered int    `json:"categories_covered"`
	HighDemandSkills  int    `json:"high_demand_skills"`
	ExperienceTier    string `json:"experience_level"`
}

// SkillAnalysis bundles everything derived from a bare skill list: category
// breakdown, market gaps, learning recommendations and alignment. Shared by
// the resume and comprehensive-analysis workflows.
type SkillAnalysis struct {
	Profile         SkillProfile                   `json:"skill_profile"`
	Categorized     map[string][]string            `json:"categorized_skills"`
	Gaps            market.Gaps                    `json:"skill_gaps"`
	Learning        market.LearningRecommendations `json:"recommendations"`
	MarketAlignment market.Alignment               `json:"market_alignment"`
}

func analyzeSkills(skills []string, experienceText string) SkillAnalysis {
	deduped := taxonomy.Dedupe(skills)
	categorized := taxonomy.Categorize(deduped)
	gaps := market.IdentifyGaps(deduped)

	inDemand := 0
	for _, s := range deduped {
		if _, ok := market.Lookup(s); ok {
			inDemand++
		}
	}

	return SkillAnalysis{
		Profile: SkillProfile{
			TotalSkills:       len(deduped),
			CategoriesCovered: len(categorized),
			HighDemandSkills:  inDemand,
			ExperienceTier:    profile.ParseTier(experienceText),
		},
		Categorized:     categorized,
		Gaps:            gaps,
		Learning:        market.RecommendLearning(gaps),
		MarketAlignment: market.CalculateAlignment(deduped),
	}
}
