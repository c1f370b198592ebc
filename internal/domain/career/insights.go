package career

type TrendField struct {
	Field      string `json:"field"`
	GrowthRate int    `json:"growth_rate"`
	JobGrowth  int    `json:"job_growth"`
}

type IndustryInsights struct {
	TopGrowingFields   []TrendField `json:"top_growing_fields"`
	SalaryTrend        string       `json:"salary_trend"`
	RemoteWorkTrend    string       `json:"remote_work_trend"`
	MostInDemandSkills []string     `json:"most_in_demand_skills"`
}

var industryTrends = []TrendField{
	{Field: "AI/ML", GrowthRate: 35, JobGrowth: 42},
	{Field: "Cloud Computing", GrowthRate: 25, JobGrowth: 30},
	{Field: "Cybersecurity", GrowthRate: 28, JobGrowth: 35},
	{Field: "Web Development", GrowthRate: 15, JobGrowth: 20},
	{Field: "Mobile Development", GrowthRate: 18, JobGrowth: 22},
	{Field: "Data Engineering", GrowthRate: 32, JobGrowth: 38},
}

func Insights() IndustryInsights {
	top := make([]TrendField, 0, 3)
	top = append(top, industryTrends[0], industryTrends[1], industryTrends[2])
	return IndustryInsights{
		TopGrowingFields:   top,
		SalaryTrend:        "Tech salaries increased 8% in 2024",
		RemoteWorkTrend:    "68% of tech jobs now offer remote options",
		MostInDemandSkills: []string{"Python", "AWS", "React", "Machine Learning", "Docker"},
	}
}
