package dto

import (
	"career-coach/internal/resume"
	"career-coach/internal/usecase"
)

type ParseResumeResponse struct {
	Success    bool                   `json:"success"`
	WorkflowID string                 `json:"workflow_id"`
	FileName   string                 `json:"fileName"`
	Content    string                 `json:"content"`
	ParsedData resume.Parsed          `json:"parsedData"`
	Score      int                    `json:"score"`
	Analysis   usecase.ResumeAnalysis `json:"analysis"`
	Message    string                 `json:"message"`
}
