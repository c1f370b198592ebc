package usecase

import (
	"context"
	"log"
	"strings"

	"career-coach/internal/domain/career"
	"career-coach/internal/domain/profile"
	"career-coach/internal/resume"
	"career-coach/internal/workflow"
)

const (
	contentPreviewLimit = 1000
	resumeRecLimit      = 3
	goodResumeScore     = 80
)

type ResumeResult struct {
	WorkflowID string
	FileName   string
	Content    string
	Parsed     resume.Parsed
	Score      int
	Analysis   ResumeAnalysis
}

// ResumeAnalysis is the full product of the resume workflow: the derived
// profile, the skill analysis and a ranked set of career recommendations.
type ResumeAnalysis struct {
	Profile         profile.Profile         `json:"profile_analysis"`
	Skills          SkillAnalysis           `json:"skill_analysis"`
	Recommendations []career.Recommendation `json:"career_recommendations"`
	NextSteps       []string                `json:"next_steps"`
}

type ResumeUsecase interface {
	ProcessResume(ctx context.Context, filename string, data []byte) (ResumeResult, error)
}

type Resume struct {
	workflows *workflow.Store
	logger    *log.Logger
}

func NewResumeUsecase(workflows *workflow.Store, logger *log.Logger) *Resume {
	return &Resume{workflows: workflows, logger: logger}
}

func (u *Resume) ProcessResume(ctx context.Context, filename string, data []byte) (ResumeResult, error) {
	if strings.TrimSpace(filename) == "" || len(data) == 0 {
		return ResumeResult{}, ErrInvalidInput
	}

	id := u.workflows.Begin("resume_analysis", "resume_analysis")

	text, err := resume.ExtractText(filename, data)
	if err != nil {
		u.workflows.Fail(id, err)
		return ResumeResult{WorkflowID: id}, err
	}
	if strings.TrimSpace(text) == "" {
		u.workflows.Fail(id, ErrNoTextExtracted)
		return ResumeResult{WorkflowID: id}, ErrNoTextExtracted
	}

	parsed := resume.Parse(text)
	score := resume.Score(parsed)

	u.workflows.SetStage(id, "skill_analysis")
	prof := profile.Analyze(parsed.Skills, parsed.Experience, nil)
	skills := analyzeSkills(parsed.Skills, parsed.Experience)

	u.workflows.SetStage(id, "generating_recommendations")
	recs := career.Recommend(prof, resumeRecLimit)

	analysis := ResumeAnalysis{
		Profile:         prof,
		Skills:          skills,
		Recommendations: recs,
		NextSteps:       resumeNextSteps(score, skills, recs),
	}

	u.workflows.Complete(id)
	if u.logger != nil {
		u.logger.Printf("[Resume] workflow=%s file=%s skills=%d score=%d", id, filename, len(parsed.Skills), score)
	}

	return ResumeResult{
		WorkflowID: id,
		FileName:   filename,
		Content:    previewContent(text),
		Parsed:     parsed,
		Score:      score,
		Analysis:   analysis,
	}, nil
}

func previewContent(text string) string {
	if len(text) <= contentPreviewLimit {
		return text
	}
	return text[:contentPreviewLimit]
}

func resumeNextSteps(score int, skills SkillAnalysis, recs []career.Recommendation) []string {
	steps := []string{}

	if score < goodResumeScore {
		steps = append(steps, "Improve your resume by adding more detailed experience descriptions")
	}

	if critical := skills.Gaps.CriticalMissing; len(critical) > 0 {
		if len(critical) > 2 {
			critical = critical[:2]
		}
		steps = append(steps, "Prioritize learning: "+strings.Join(critical, ", "))
	}

	if len(recs) > 0 {
		steps = append(steps, "Consider pursuing: "+recs[0].Path.Title)
	}

	steps = append(steps,
		"Update your LinkedIn profile with new skills",
		"Start building a portfolio or contributing to open source projects",
	)
	return steps
}

var _ ResumeUsecase = (*Resume)(nil)
