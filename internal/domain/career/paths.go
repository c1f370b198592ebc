// Package career holds the static career-path catalog and the
// recommendation scorer that matches paths against a user profile.
package career

type PathTemplate struct {
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	CurrentSkillsNeeded []string `json:"current_skills_needed"`
	SkillsToDevelop     []string `json:"skills_to_develop"`
	Timeline            string   `json:"timeline"`
	SalaryRange         string   `json:"salary_range"`
	Icon                string   `json:"icon"`
	GrowthPotential     string   `json:"growth_potential"`
	MarketDemand        int      `json:"market_demand"`
	Difficulty          string   `json:"difficulty"`
}

var domainOrder = []string{
	"Software Development",
	"Data Science",
	"Cloud & DevOps",
	"Product & Management",
}

var catalog = map[string][]PathTemplate{
	"Software Development": {
		{
			Title:               "Senior Full Stack Developer",
			Description:         "Build end-to-end applications with modern frameworks and cloud technologies.",
			CurrentSkillsNeeded: []string{"JavaScript", "Python", "React", "Node.js"},
			SkillsToDevelop:     []string{"AWS", "Docker", "GraphQL", "TypeScript"},
			Timeline:            "6-12 months with focused learning",
			SalaryRange:         "$120k - $180k",
			Icon:                "code",
			GrowthPotential:     "High",
			MarketDemand:        90,
			Difficulty:          "Medium",
		},
		{
			Title:               "Frontend Architect",
			Description:         "Design and lead frontend architecture decisions for large-scale applications.",
			CurrentSkillsNeeded: []string{"JavaScript", "React", "Vue.js", "Angular"},
			SkillsToDevelop:     []string{"Micro-frontends", "Performance Optimization", "Design Systems"},
			Timeline:            "8-15 months with leadership experience",
			SalaryRange:         "$130k - $200k",
			Icon:                "palette",
			GrowthPotential:     "High",
			MarketDemand:        75,
			Difficulty:          "High",
		},
		{
			Title:               "Backend Engineer",
			Description:         "Focus on server-side architecture, APIs, and system scalability.",
			CurrentSkillsNeeded: []string{"Python", "Node.js", "SQL", "REST APIs"},
			SkillsToDevelop:     []string{"Microservices", "Database Design", "System Architecture"},
			Timeline:            "4-10 months with system design focus",
			SalaryRange:         "$115k - $170k",
			Icon:                "server",
			GrowthPotential:     "High",
			MarketDemand:        85,
			Difficulty:          "Medium",
		},
	},
	"Data Science": {
		{
			Title:               "Data Scientist",
			Description:         "Analyze data to drive business decisions using machine learning and statistical methods.",
			CurrentSkillsNeeded: []string{"Python", "SQL", "Statistics"},
			SkillsToDevelop:     []string{"Machine Learning", "Deep Learning", "Data Visualization", "R"},
			Timeline:            "12-18 months with intensive study",
			SalaryRange:         "$130k - $200k",
			Icon:                "chart-line",
			GrowthPotential:     "Very High",
			MarketDemand:        95,
			Difficulty:          "High",
		},
		{
			Title:               "Machine Learning Engineer",
			Description:         "Build and deploy machine learning models at scale in production environments.",
			CurrentSkillsNeeded: []string{"Python", "Machine Learning", "Statistics"},
			SkillsToDevelop:     []string{"MLOps", "TensorFlow", "PyTorch", "Kubernetes"},
			Timeline:            "10-16 months with ML focus",
			SalaryRange:         "$140k - $220k",
			Icon:                "brain",
			GrowthPotential:     "Very High",
			MarketDemand:        92,
			Difficulty:          "Very High",
		},
		{
			Title:               "Data Engineer",
			Description:         "Build and maintain data pipelines and infrastructure for data processing.",
			CurrentSkillsNeeded: []string{"Python", "SQL", "Data Processing"},
			SkillsToDevelop:     []string{"Apache Spark", "Apache Kafka", "Data Warehousing", "ETL"},
			Timeline:            "8-14 months with data infrastructure focus",
			SalaryRange:         "$125k - $190k",
			Icon:                "database",
			GrowthPotential:     "High",
			MarketDemand:        88,
			Difficulty:          "High",
		},
	},
	"Cloud & DevOps": {
		{
			Title:               "Cloud Solutions Architect",
			Description:         "Design and implement scalable cloud infrastructure and solutions.",
			CurrentSkillsNeeded: []string{"Linux", "Networking", "Programming"},
			SkillsToDevelop:     []string{"AWS", "Kubernetes", "Terraform", "Azure"},
			Timeline:            "8-15 months with hands-on practice",
			SalaryRange:         "$140k - $220k",
			Icon:                "cloud",
			GrowthPotential:     "Very High",
			MarketDemand:        90,
			Difficulty:          "High",
		},
		{
			Title:               "DevOps Engineer",
			Description:         "Automate deployment pipelines and manage infrastructure as code.",
			CurrentSkillsNeeded: []string{"Linux", "Scripting", "Git"},
			SkillsToDevelop:     []string{"Docker", "Kubernetes", "Jenkins", "Infrastructure as Code"},
			Timeline:            "6-12 months with automation focus",
			SalaryRange:         "$120k - $180k",
			Icon:                "cog",
			GrowthPotential:     "High",
			MarketDemand:        85,
			Difficulty:          "Medium",
		},
		{
			Title:               "Site Reliability Engineer",
			Description:         "Ensure system reliability, performance, and scalability at large scale.",
			CurrentSkillsNeeded: []string{"Programming", "System Administration", "Monitoring"},
			SkillsToDevelop:     []string{"SRE Practices", "Observability", "Incident Management"},
			Timeline:            "10-18 months with reliability focus",
			SalaryRange:         "$135k - $200k",
			Icon:                "shield-check",
			GrowthPotential:     "High",
			MarketDemand:        80,
			Difficulty:          "High",
		},
	},
	"Product & Management": {
		{
			Title:               "Technical Product Manager",
			Description:         "Bridge technical and business teams to deliver successful products.",
			CurrentSkillsNeeded: []string{"Technical Background", "Communication", "Analytics"},
			SkillsToDevelop:     []string{"Product Strategy", "User Research", "Agile Methodology"},
			Timeline:            "6-12 months with business focus",
			SalaryRange:         "$130k - $190k",
			Icon:                "briefcase",
			GrowthPotential:     "High",
			MarketDemand:        82,
			Difficulty:          "Medium",
		},
		{
			Title:               "Engineering Manager",
			Description:         "Lead engineering teams while maintaining technical expertise.",
			CurrentSkillsNeeded: []string{"Programming", "Team Experience", "Communication"},
			SkillsToDevelop:     []string{"Leadership", "People Management", "Strategic Planning"},
			Timeline:            "12-24 months with leadership development",
			SalaryRange:         "$150k - $230k",
			Icon:                "users",
			GrowthPotential:     "Very High",
			MarketDemand:        78,
			Difficulty:          "High",
		},
	},
}

func DomainNames() []string {
	out := make([]string, len(domainOrder))
	copy(out, domainOrder)
	return out
}

func PathsForDomain(domain string) []PathTemplate {
	paths, ok := catalog[domain]
	if !ok {
		return nil
	}
	out := make([]PathTemplate, len(paths))
	copy(out, paths)
	return out
}
