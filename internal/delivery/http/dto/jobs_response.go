package dto

import (
	"career-coach/internal/domain/ranking"
	"career-coach/internal/usecase"
)

type JobsResponse struct {
	Success             bool                        `json:"success"`
	Jobs                []ranking.RankedPosting     `json:"jobs"`
	Total               int                         `json:"total"`
	Source              string                      `json:"source"`
	GapAnalysis         []usecase.JobGap            `json:"gap_analysis"`
	ApplicationStrategy usecase.ApplicationStrategy `json:"application_strategy"`
}
