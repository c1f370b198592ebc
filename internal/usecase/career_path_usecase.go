package usecase

import (
	"context"

	"career-coach/internal/domain/career"
	"career-coach/internal/domain/taxonomy"
)

// defaultPathSkills stands in when a caller asks for career paths without
// supplying any skills.
var defaultPathSkills = []string{"JavaScript", "HTML", "CSS"}

type CareerPathsResult struct {
	Paths      []career.QuickPathMatch
	UserSkills []string
}

type CareerPathUsecase interface {
	GetCareerPaths(ctx context.Context, skills []string) (CareerPathsResult, error)
}

type CareerPath struct{}

func NewCareerPathUsecase() *CareerPath {
	return &CareerPath{}
}

func (u *CareerPath) GetCareerPaths(_ context.Context, skills []string) (CareerPathsResult, error) {
	deduped := taxonomy.Dedupe(skills)
	if len(deduped) == 0 {
		deduped = defaultPathSkills
	}

	return CareerPathsResult{
		Paths:      career.MatchQuickPaths(deduped),
		UserSkills: deduped,
	}, nil
}

var _ CareerPathUsecase = (*CareerPath)(nil)
