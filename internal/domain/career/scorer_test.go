package career

import (
	"strings"
	"testing"

	"career-coach/internal/domain/profile"
)

func TestScore_MonotonicInMarketDemand(t *testing.T) {
	p := profile.Analyze([]string{"Python", "SQL"}, "3 years", nil)

	low := PathTemplate{MarketDemand: 60, Difficulty: "Medium", GrowthPotential: "High",
		CurrentSkillsNeeded: []string{"Python", "SQL"}}
	high := low
	high.MarketDemand = 80

	if Score(low, p) >= Score(high, p) {
		t.Fatalf("expected higher demand to score higher: %d vs %d", Score(low, p), Score(high, p))
	}
}

func TestScore_ClampedTo100(t *testing.T) {
	p := profile.Analyze([]string{"Python", "SQL"}, "3 years", nil)
	path := PathTemplate{
		MarketDemand:        95,
		Difficulty:          "Medium",
		GrowthPotential:     "Very High",
		CurrentSkillsNeeded: []string{"Python", "SQL"},
	}
	// 95 + 30 + 20 + 15 overshoots and must clamp.
	if got := Score(path, p); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestScore_EmptySkillsNeededNoOverlapBonus(t *testing.T) {
	p := profile.Analyze([]string{"Python"}, "3 years", nil)
	path := PathTemplate{MarketDemand: 50, Difficulty: "Medium", GrowthPotential: "Low"}

	// 50 + 0 overlap + 20 compatibility + 0 growth.
	if got := Score(path, p); got != 70 {
		t.Fatalf("expected 70, got %d", got)
	}
}

func TestExperienceCompatibility_DefaultForUnknownPair(t *testing.T) {
	if got := experienceCompatibility("Mid", "Unrated"); got != 10 {
		t.Fatalf("expected default 10, got %d", got)
	}
	if got := experienceCompatibility("Entry", "Hard"); got != -10 {
		t.Fatalf("expected -10, got %d", got)
	}
}

func TestRecommend_SortedAndLimited(t *testing.T) {
	p := profile.Analyze([]string{"Python", "Machine Learning", "AWS", "Docker"}, "5 years", nil)

	recs := Recommend(p, 3)
	if len(recs) == 0 || len(recs) > 3 {
		t.Fatalf("expected 1..3 recommendations, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Fatalf("scores not descending at %d: %d > %d", i, recs[i].Score, recs[i-1].Score)
		}
	}
	for _, r := range recs {
		if r.Score < 0 || r.Score > 100 {
			t.Fatalf("score out of range: %d", r.Score)
		}
		if r.FitExplanation == "" {
			t.Fatalf("expected fit explanation for %s", r.Path.Title)
		}
		if len(r.NextSteps) < 2 {
			t.Fatalf("expected next steps for %s", r.Path.Title)
		}
	}
}

func TestRecommend_DefaultLimit(t *testing.T) {
	p := profile.Analyze([]string{"React", "Node.js", "PostgreSQL", "AWS"}, "3 years", nil)
	recs := Recommend(p, 0)
	if len(recs) > 5 {
		t.Fatalf("expected default limit 5, got %d", len(recs))
	}
}

func TestFitExplanation_MentionsSkillOverlap(t *testing.T) {
	p := profile.Analyze([]string{"Python", "SQL"}, "3 years", nil)
	path := PathTemplate{
		MarketDemand:        90,
		Difficulty:          "Medium",
		CurrentSkillsNeeded: []string{"Python", "SQL", "Statistics"},
	}

	got := fitExplanation(path, p)
	if !strings.Contains(got, "2 out of 3 required skills") {
		t.Fatalf("expected overlap sentence, got %q", got)
	}
	if !strings.Contains(got, "very high market demand") {
		t.Fatalf("expected demand sentence, got %q", got)
	}
}

func TestMatchQuickPaths_SortedAndDeterministic(t *testing.T) {
	out := MatchQuickPaths([]string{"HTML", "CSS", "JavaScript"})
	if len(out) != 4 {
		t.Fatalf("expected 4 quick paths, got %d", len(out))
	}
	if out[0].ID != "path-frontend" {
		t.Fatalf("expected frontend first, got %s", out[0].ID)
	}
	if out[0].MatchPercentage != 60 {
		t.Fatalf("expected 60%% for 3 of 5 skills, got %d", out[0].MatchPercentage)
	}
	for i := 1; i < len(out); i++ {
		if out[i].MatchPercentage > out[i-1].MatchPercentage {
			t.Fatalf("not sorted at %d", i)
		}
	}
}

func TestDomainNames_StableOrder(t *testing.T) {
	names := DomainNames()
	if len(names) != 4 {
		t.Fatalf("expected 4 domains, got %d", len(names))
	}
	if names[0] != "Software Development" {
		t.Fatalf("unexpected first domain: %s", names[0])
	}
}
