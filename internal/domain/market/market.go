// Package market holds the static market-demand table and the computations
// derived from it: skill-gap partitioning and market alignment.
package market

import (
	"career-coach/internal/domain/taxonomy"
)

type Entry struct {
	Skill       string `json:"skill"`
	DemandLevel int    `json:"demand_level"`
	GrowthRate  int    `json:"growth_rate"`
	AvgSalary   int    `json:"avg_salary"`
}

// table iteration order is fixed; gap buckets preserve it.
var table = []Entry{
	{Skill: "Machine Learning", DemandLevel: 95, GrowthRate: 25, AvgSalary: 130000},
	{Skill: "Python", DemandLevel: 90, GrowthRate: 15, AvgSalary: 110000},
	{Skill: "JavaScript", DemandLevel: 88, GrowthRate: 10, AvgSalary: 100000},
	{Skill: "React", DemandLevel: 85, GrowthRate: 20, AvgSalary: 105000},
	{Skill: "AWS", DemandLevel: 92, GrowthRate: 30, AvgSalary: 125000},
	{Skill: "Docker", DemandLevel: 80, GrowthRate: 22, AvgSalary: 115000},
	{Skill: "Kubernetes", DemandLevel: 78, GrowthRate: 35, AvgSalary: 130000},
	{Skill: "Node.js", DemandLevel: 75, GrowthRate: 12, AvgSalary: 105000},
	{Skill: "TypeScript", DemandLevel: 82, GrowthRate: 28, AvgSalary: 110000},
	{Skill: "GraphQL", DemandLevel: 70, GrowthRate: 40, AvgSalary: 115000},
	{Skill: "Terraform", DemandLevel: 65, GrowthRate: 45, AvgSalary: 120000},
	{Skill: "Vue.js", DemandLevel: 60, GrowthRate: 18, AvgSalary: 95000},
}

const (
	criticalDemandThreshold = 85
	emergingGrowthThreshold = 30

	// Floor applied when the user has skills but none appear in the table,
	// so a niche profile does not read as zero market signal.
	baselineAlignmentScore = 30
)

func Entries() []Entry {
	out := make([]Entry, len(table))
	copy(out, table)
	return out
}

func Lookup(skill string) (Entry, bool) {
	key := taxonomy.Normalize(skill)
	for _, e := range table {
		if taxonomy.Normalize(e.Skill) == key {
			return e, true
		}
	}
	return Entry{}, false
}

type Gaps struct {
	CriticalMissing       []string `json:"critical_missing"`
	EmergingOpportunities []string `json:"emerging_opportunities"`
	ComplementarySkills   []string `json:"complementary_skills"`
}

// IdentifyGaps partitions market skills absent from the user's set into
// three disjoint buckets: critical (demand >= 85), emerging (growth >= 30),
// complementary (the rest). Bucket order follows table order.
func IdentifyGaps(userSkills []string) Gaps {
	userSet := make(map[string]struct{}, len(userSkills))
	for _, s := range userSkills {
		userSet[taxonomy.Normalize(s)] = struct{}{}
	}

	g := Gaps{
		CriticalMissing:       []string{},
		EmergingOpportunities: []string{},
		ComplementarySkills:   []string{},
	}
	for _, e := range table {
		if _, ok := userSet[taxonomy.Normalize(e.Skill)]; ok {
			continue
		}
		switch {
		case e.DemandLevel >= criticalDemandThreshold:
			g.CriticalMissing = append(g.CriticalMissing, e.Skill)
		case e.GrowthRate >= emergingGrowthThreshold:
			g.EmergingOpportunities = append(g.EmergingOpportunities, e.Skill)
		default:
			g.ComplementarySkills = append(g.ComplementarySkills, e.Skill)
		}
	}
	return g
}

type Alignment struct {
	AlignmentScore      int `json:"alignment_score"`
	InDemandCount       int `json:"in_demand_count"`
	TotalSkills         int `json:"total_skills"`
	AlignmentPercentage int `json:"alignment_percentage"`
}

// CalculateAlignment scores how well the user's skills line up with market
// demand: the mean demand level over skills present in the table, floored at
// a baseline when the user has skills but none are listed. No skills at all
// scores zero.
func CalculateAlignment(userSkills []string) Alignment {
	skills := taxonomy.Dedupe(userSkills)
	if len(skills) == 0 {
		return Alignment{}
	}

	totalDemand := 0
	inDemand := 0
	for _, s := range skills {
		if e, ok := Lookup(s); ok {
			totalDemand += e.DemandLevel
			inDemand++
		}
	}

	score := baselineAlignmentScore
	if inDemand > 0 {
		score = totalDemand / inDemand
		if score > 100 {
			score = 100
		}
	}

	return Alignment{
		AlignmentScore:      score,
		InDemandCount:       inDemand,
		TotalSkills:         len(skills),
		AlignmentPercentage: (inDemand * 100) / len(skills),
	}
}
