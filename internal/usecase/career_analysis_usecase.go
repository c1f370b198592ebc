package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"career-coach/internal/domain/career"
	"career-coach/internal/domain/profile"
	"career-coach/internal/domain/ranking"
	"career-coach/internal/domain/taxonomy"
	"career-coach/internal/workflow"
)

const (
	analysisRecLimit    = 5
	recommendedJobLimit = 10
	priorityActionLimit = 5
)

type AnalysisInput struct {
	Skills             []string
	Experience         string
	Interests          []string
	LocationPreference string
}

type MatchInsights struct {
	TotalJobsAnalyzed    int            `json:"total_jobs_analyzed"`
	HighMatchJobs        int            `json:"high_match_jobs"`
	MediumMatchJobs      int            `json:"medium_match_jobs"`
	MatchDistribution    map[string]int `json:"match_distribution"`
	TopSkillRequirements []string       `json:"top_skill_requirements"`
	SkillsYouHave        int            `json:"skills_you_have"`
}

type MarketTrends struct {
	TrendingSkills   []string          `json:"trending_skills"`
	GrowingCompanies []string          `json:"growing_companies"`
	PopularLocations []string          `json:"popular_locations"`
	AverageSalaries  map[string]string `json:"average_salaries"`
}

type JobMarketAnalysis struct {
	RecommendedJobs    []ranking.RankedPosting `json:"recommended_jobs"`
	MatchInsights      MatchInsights           `json:"match_insights"`
	MarketTrends       MarketTrends            `json:"market_trends"`
	TotalOpportunities int                     `json:"total_opportunities"`
}

type PriorityAction struct {
	Category string `json:"category"`
	Action   string `json:"action"`
	Priority string `json:"priority"`
	Effort   string `json:"effort"`
	Timeline string `json:"timeline"`
}

type ExecutiveSummary struct {
	ProfileStrength string `json:"profile_strength"`
	MarketReadiness string `json:"market_readiness"`
	JobOpportunities int   `json:"job_opportunities"`
	TopCareerPath   string `json:"top_career_path"`
}

type ComprehensiveReport struct {
	ExecutiveSummary     ExecutiveSummary    `json:"executive_summary"`
	KeyInsights          []string            `json:"key_insights"`
	ProfileScore         int                 `json:"profile_score"`
	MarketAlignmentScore int                 `json:"market_alignment_score"`
	TotalOpportunities   int                 `json:"total_opportunities"`
	PriorityActions      []PriorityAction    `json:"priority_actions"`
	SuccessTimeline      map[string][]string `json:"success_timeline"`
	GeneratedAt          time.Time           `json:"report_generated_at"`
}

type DetailedAnalysis struct {
	Profile         profile.Profile         `json:"profile_analysis"`
	Skills          SkillAnalysis           `json:"skill_analysis"`
	JobMarket       JobMarketAnalysis       `json:"job_market_analysis"`
	Recommendations []career.Recommendation `json:"career_recommendations"`
	Insights        career.IndustryInsights `json:"industry_insights"`
}

type ComprehensiveResult struct {
	WorkflowID string
	Report     ComprehensiveReport
	Detailed   DetailedAnalysis
}

type CareerAnalysisUsecase interface {
	Comprehensive(ctx context.Context, in AnalysisInput) (ComprehensiveResult, error)
}

type jobSearcher interface {
	SearchJobs(ctx context.Context, params JobSearchParams) (JobSearchResult, error)
}

type CareerAnalysis struct {
	jobs      jobSearcher
	workflows *workflow.Store
	logger    *log.Logger
	now       func() time.Time
}

func NewCareerAnalysisUsecase(jobs jobSearcher, workflows *workflow.Store, logger *log.Logger) *CareerAnalysis {
	return &CareerAnalysis{jobs: jobs, workflows: workflows, logger: logger, now: time.Now}
}

func (u *CareerAnalysis) Comprehensive(ctx context.Context, in AnalysisInput) (ComprehensiveResult, error) {
	if len(taxonomy.Dedupe(in.Skills)) == 0 {
		return ComprehensiveResult{}, ErrInvalidInput
	}

	id := u.workflows.Begin("comprehensive_analysis", "profile_analysis")

	prof := profile.Analyze(in.Skills, in.Experience, in.Interests)

	u.workflows.SetStage(id, "skill_analysis")
	skills := analyzeSkills(in.Skills, in.Experience)

	u.workflows.SetStage(id, "job_market_analysis")
	jobMarket := u.analyzeJobMarket(ctx, prof, in.LocationPreference)

	u.workflows.SetStage(id, "career_recommendations")
	recs := career.Recommend(prof, analysisRecLimit)

	insights := career.Insights()

	report := buildReport(prof, skills, jobMarket, recs, u.now())

	u.workflows.Complete(id)
	if u.logger != nil {
		u.logger.Printf("[Analysis] workflow=%s skills=%d recs=%d opportunities=%d",
			id, len(prof.Skills), len(recs), jobMarket.TotalOpportunities)
	}

	return ComprehensiveResult{
		WorkflowID: id,
		Report:     report,
		Detailed: DetailedAnalysis{
			Profile:         prof,
			Skills:          skills,
			JobMarket:       jobMarket,
			Recommendations: recs,
			Insights:        insights,
		},
	}, nil
}

func (u *CareerAnalysis) analyzeJobMarket(ctx context.Context, prof profile.Profile, locationPref string) JobMarketAnalysis {
	filters := ranking.Filters{Location: locationPref, Experience: prof.Tier}
	result, err := u.jobs.SearchJobs(ctx, JobSearchParams{Skills: prof.Skills, Filters: filters})
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Analysis] job market search failed: %v", err)
		}
		result = JobSearchResult{}
	}

	recommended := result.Jobs
	if len(recommended) > recommendedJobLimit {
		recommended = recommended[:recommendedJobLimit]
	}

	return JobMarketAnalysis{
		RecommendedJobs:    recommended,
		MatchInsights:      buildMatchInsights(result.Jobs, prof.Skills),
		MarketTrends:       marketTrends(),
		TotalOpportunities: result.Total,
	}
}

func buildMatchInsights(jobs []ranking.RankedPosting, userSkills []string) MatchInsights {
	if len(jobs) == 0 {
		return MatchInsights{MatchDistribution: map[string]int{}}
	}

	high := 0
	medium := 0
	for _, j := range jobs {
		switch {
		case j.MatchScore >= 80:
			high++
		case j.MatchScore >= 50:
			medium++
		}
	}

	counts := map[string]int{}
	order := []string{}
	for _, j := range jobs {
		for _, r := range j.Requirements {
			if _, seen := counts[r]; !seen {
				order = append(order, r)
			}
			counts[r]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 5 {
		order = order[:5]
	}

	topSet := make(map[string]struct{}, len(order))
	for _, r := range order {
		topSet[taxonomy.Normalize(r)] = struct{}{}
	}
	have := 0
	for _, s := range taxonomy.Dedupe(userSkills) {
		if _, ok := topSet[taxonomy.Normalize(s)]; ok {
			have++
		}
	}

	return MatchInsights{
		TotalJobsAnalyzed: len(jobs),
		HighMatchJobs:     high,
		MediumMatchJobs:   medium,
		MatchDistribution: map[string]int{
			"high":   high,
			"medium": medium,
			"low":    len(jobs) - high - medium,
		},
		TopSkillRequirements: order,
		SkillsYouHave:        have,
	}
}

func marketTrends() MarketTrends {
	return MarketTrends{
		TrendingSkills:   []string{"Machine Learning", "AWS", "React", "Python", "Docker"},
		GrowingCompanies: []string{"TechCorp Inc.", "AI Innovations", "StartupCo"},
		PopularLocations: []string{"Remote", "San Francisco, CA", "New York, NY"},
		AverageSalaries: map[string]string{
			"Entry-level": "$70k - $100k",
			"Mid-level":   "$100k - $140k",
			"Senior":      "$140k - $200k",
		},
	}
}

func buildReport(prof profile.Profile, skills SkillAnalysis, jobMarket JobMarketAnalysis,
	recs []career.Recommendation, now time.Time) ComprehensiveReport {

	profileScore := prof.Completeness.Score
	alignment := skills.MarketAlignment.AlignmentScore
	opportunities := len(jobMarket.RecommendedJobs)

	summary := ExecutiveSummary{
		ProfileStrength:  strengthLabel(profileScore),
		MarketReadiness:  readinessLabel(alignment),
		JobOpportunities: opportunities,
		TopCareerPath:    "General Development",
	}
	if len(recs) > 0 {
		summary.TopCareerPath = recs[0].Path.Title
	}

	return ComprehensiveReport{
		ExecutiveSummary:     summary,
		KeyInsights:          keyInsights(profileScore, alignment, opportunities, skills),
		ProfileScore:         profileScore,
		MarketAlignmentScore: alignment,
		TotalOpportunities:   opportunities,
		PriorityActions:      priorityActions(prof, skills, recs),
		SuccessTimeline:      successTimeline(recs),
		GeneratedAt:          now,
	}
}

func strengthLabel(score int) string {
	switch {
	case score >= 80:
		return "Strong"
	case score >= 60:
		return "Good"
	default:
		return "Needs Improvement"
	}
}

func readinessLabel(alignment int) string {
	switch {
	case alignment >= 80:
		return "High"
	case alignment >= 60:
		return "Medium"
	default:
		return "Low"
	}
}

func keyInsights(profileScore, alignment, opportunities int, skills SkillAnalysis) []string {
	insights := []string{}

	if profileScore < 70 {
		insights = append(insights, "Your profile could be strengthened with more detailed information")
	}
	if n := len(skills.Gaps.CriticalMissing); n > 0 {
		insights = append(insights, fmt.Sprintf("Critical skills gap identified: %d high-demand skills missing", n))
	}
	if alignment >= 85 {
		insights = append(insights, "Your skills are well-aligned with current market demands")
	} else if alignment < 60 {
		insights = append(insights, "Consider focusing on more in-demand skills")
	}
	if opportunities >= 20 {
		insights = append(insights, "Excellent job market opportunities available")
	} else if opportunities < 10 {
		insights = append(insights, "Limited immediate opportunities - skill development recommended")
	}

	return insights
}

// completenessAreas fixes iteration order over the details map.
var completenessAreas = []string{"skills", "experience", "interests", "portfolio"}

func priorityActions(prof profile.Profile, skills SkillAnalysis, recs []career.Recommendation) []PriorityAction {
	actions := []PriorityAction{}

	for _, area := range completenessAreas {
		status, ok := prof.Completeness.Details[area]
		if !ok {
			continue
		}
		if status != "Missing" && status != "Needs improvement" {
			continue
		}
		priority := "Medium"
		if area == "skills" || area == "experience" {
			priority = "High"
		}
		actions = append(actions, PriorityAction{
			Category: "Profile",
			Action:   fmt.Sprintf("Complete %s information", area),
			Priority: priority,
			Effort:   "Low",
			Timeline: "1 week",
		})
	}

	critical := skills.Gaps.CriticalMissing
	if len(critical) > 2 {
		critical = critical[:2]
	}
	for _, skill := range critical {
		actions = append(actions, PriorityAction{
			Category: "Skill Development",
			Action:   "Learn " + skill,
			Priority: "High",
			Effort:   "High",
			Timeline: "2-3 months",
		})
	}

	if len(recs) > 0 {
		actions = append(actions, PriorityAction{
			Category: "Career Planning",
			Action:   fmt.Sprintf("Explore %s opportunities", recs[0].Path.Title),
			Priority: "Medium",
			Effort:   "Medium",
			Timeline: "1 month",
		})
	}

	priorityOrder := map[string]int{"High": 3, "Medium": 2, "Low": 1}
	sort.SliceStable(actions, func(i, j int) bool {
		return priorityOrder[actions[i].Priority] > priorityOrder[actions[j].Priority]
	})

	if len(actions) > priorityActionLimit {
		actions = actions[:priorityActionLimit]
	}
	return actions
}

func successTimeline(recs []career.Recommendation) map[string][]string {
	if len(recs) == 0 {
		return map[string][]string{}
	}
	top := recs[0].Path.Title

	return map[string][]string{
		"next_30_days": {
			"Complete profile assessment and improvements",
			"Research target companies and roles",
			"Begin skill development plan",
		},
		"next_90_days": {
			"Complete first priority skill course",
			"Update resume and LinkedIn profile",
			"Start networking in target industry",
		},
		"next_6_months": {
			"Complete skill development goals",
			"Build portfolio projects",
			"Apply to target positions",
		},
		"next_12_months": {
			fmt.Sprintf("Transition to %s role", top),
			"Continue advanced skill development",
			"Establish yourself in new position",
		},
	}
}

var _ CareerAnalysisUsecase = (*CareerAnalysis)(nil)
