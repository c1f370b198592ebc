package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"career-coach/internal/domain/job"
	"career-coach/internal/domain/matching"
	"career-coach/internal/domain/ranking"
	"career-coach/internal/domain/taxonomy"
	"career-coach/internal/infrastructure/jobsapi"
)

const (
	SourceLiveAPI  = "live_api"
	SourceFallback = "fallback_data"

	gapAnalysisDepth = 5
)

type JobSearchParams struct {
	Skills  []string
	Filters ranking.Filters
}

type JobGap struct {
	JobTitle string          `json:"job_title"`
	Company  string          `json:"company"`
	Match    matching.Result `json:"match_analysis"`
}

type ApplicationStrategy struct {
	ImmediateApplications  int      `json:"immediate_applications"`
	SkillDevelopmentNeeded int      `json:"skill_development_needed"`
	Recommendations        []string `json:"recommendations"`
}

type JobSearchResult struct {
	Jobs        []ranking.RankedPosting `json:"jobs"`
	Total       int                     `json:"total"`
	Source      string                  `json:"source"`
	GapAnalysis []JobGap                `json:"gap_analysis"`
	Strategy    ApplicationStrategy     `json:"application_strategy"`
}

type JobRecommendationUsecase interface {
	SearchJobs(ctx context.Context, params JobSearchParams) (JobSearchResult, error)
}

type JobRecommendation struct {
	client jobsapi.Client
	cache  JobsCache
	logger *log.Logger
}

// NewJobRecommendationUsecase accepts a nil client (live fetch disabled) and
// a nil cache (caching disabled).
func NewJobRecommendationUsecase(client jobsapi.Client, cache JobsCache, logger *log.Logger) *JobRecommendation {
	return &JobRecommendation{client: client, cache: cache, logger: logger}
}

func (u *JobRecommendation) SearchJobs(ctx context.Context, params JobSearchParams) (JobSearchResult, error) {
	skills := taxonomy.Dedupe(params.Skills)

	live, source := u.fetchLive(ctx, skills, params.Filters)

	// Live postings rank ahead of the static set on equal scores.
	merged := make([]job.Posting, 0, len(live)+5)
	merged = append(merged, live...)
	merged = append(merged, job.FallbackPostings()...)

	filtered := ranking.Apply(merged, params.Filters)
	ranked := ranking.Rank(filtered, skills)

	gaps := buildGapAnalysis(ranked, skills)

	return JobSearchResult{
		Jobs:        ranked,
		Total:       len(ranked),
		Source:      source,
		GapAnalysis: gaps,
		Strategy:    buildApplicationStrategy(gaps),
	}, nil
}

func (u *JobRecommendation) fetchLive(ctx context.Context, skills []string, f ranking.Filters) ([]job.Posting, string) {
	if u.client == nil {
		return nil, SourceFallback
	}

	key := JobsFetchCacheKey(skills, f)
	if u.cache != nil {
		var cached []job.Posting
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, SourceLiveAPI
		}
	}

	live, err := u.client.FetchJobs(ctx, skills)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Jobs] live fetch failed, using fallback data: %v", err)
		}
		return nil, SourceFallback
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, live, 0)
	}
	return live, SourceLiveAPI
}

func buildGapAnalysis(ranked []ranking.RankedPosting, skills []string) []JobGap {
	top := ranked
	if len(top) > gapAnalysisDepth {
		top = top[:gapAnalysisDepth]
	}
	gaps := make([]JobGap, 0, len(top))
	for _, r := range top {
		gaps = append(gaps, JobGap{
			JobTitle: r.Title,
			Company:  r.Company,
			Match:    matching.Match(skills, r.Requirements),
		})
	}
	return gaps
}

func buildApplicationStrategy(gaps []JobGap) ApplicationStrategy {
	strategy := ApplicationStrategy{Recommendations: []string{}}

	high := 0
	medium := 0
	for _, g := range gaps {
		switch pct := g.Match.MatchPercentage; {
		case pct >= 80:
			high++
		case pct >= 60:
			medium++
		}
	}
	strategy.ImmediateApplications = high
	strategy.SkillDevelopmentNeeded = medium

	if high > 0 {
		strategy.Recommendations = append(strategy.Recommendations,
			fmt.Sprintf("Apply immediately to %d high-match positions", high))
	}
	if medium > 0 {
		strategy.Recommendations = append(strategy.Recommendations,
			fmt.Sprintf("Develop skills for %d potential opportunities", medium))
	}

	if common := commonMissingSkills(gaps, 3); len(common) > 0 {
		strategy.Recommendations = append(strategy.Recommendations,
			"Focus on learning: "+strings.Join(common, ", "))
	}

	return strategy
}

var _ JobRecommendationUsecase = (*JobRecommendation)(nil)

// commonMissingSkills returns the most frequent missing skills across the gap
// analyses, ties broken by first appearance.
func commonMissingSkills(gaps []JobGap, limit int) []string {
	counts := map[string]int{}
	order := []string{}
	for _, g := range gaps {
		for _, s := range g.Match.Missing {
			if _, seen := counts[s]; !seen {
				order = append(order, s)
			}
			counts[s]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
