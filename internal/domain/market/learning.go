package market

type LearningPath struct {
	Courses      []string `json:"courses"`
	TimeEstimate string   `json:"time_estimate"`
	Difficulty   string   `json:"difficulty"`
}

type LearningRecommendation struct {
	Skill        string       `json:"skill"`
	Priority     string       `json:"priority"`
	LearningPath LearningPath `json:"learning_path"`
	Market       Entry        `json:"market_data"`
}

type LearningRecommendations struct {
	CriticalMissing       []LearningRecommendation `json:"critical_missing"`
	EmergingOpportunities []LearningRecommendation `json:"emerging_opportunities"`
	ComplementarySkills   []LearningRecommendation `json:"complementary_skills"`
}

var learningPaths = map[string]LearningPath{
	"Machine Learning": {
		Courses:      []string{"Machine Learning Basics", "Deep Learning Fundamentals"},
		TimeEstimate: "3-6 months",
		Difficulty:   "Advanced",
	},
	"AWS": {
		Courses:      []string{"AWS Cloud Practitioner", "AWS Solutions Architect"},
		TimeEstimate: "2-4 months",
		Difficulty:   "Intermediate",
	},
	"Docker": {
		Courses:      []string{"Docker Fundamentals", "Container Orchestration"},
		TimeEstimate: "1-2 months",
		Difficulty:   "Intermediate",
	},
	"GraphQL": {
		Courses:      []string{"GraphQL Basics", "Advanced GraphQL"},
		TimeEstimate: "1-2 months",
		Difficulty:   "Beginner",
	},
}

// RecommendLearning attaches a priority and, where a curated path exists, a
// learning path to each gap bucket. Skills without a curated path are
// skipped; the buckets themselves already carry the full gap list.
func RecommendLearning(gaps Gaps) LearningRecommendations {
	return LearningRecommendations{
		CriticalMissing:       buildRecommendations(gaps.CriticalMissing, "High Priority"),
		EmergingOpportunities: buildRecommendations(gaps.EmergingOpportunities, "Medium Priority"),
		ComplementarySkills:   buildRecommendations(gaps.ComplementarySkills, "Low Priority"),
	}
}

func buildRecommendations(skills []string, priority string) []LearningRecommendation {
	out := make([]LearningRecommendation, 0, len(skills))
	for _, s := range skills {
		path, ok := learningPaths[s]
		if !ok {
			continue
		}
		entry, _ := Lookup(s)
		out = append(out, LearningRecommendation{
			Skill:        s,
			Priority:     priority,
			LearningPath: path,
			Market:       entry,
		})
	}
	return out
}
