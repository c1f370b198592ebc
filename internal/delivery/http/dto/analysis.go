package dto

import "career-coach/internal/usecase"

type AnalysisRequest struct {
	Skills             []string `json:"skills"`
	Experience         string   `json:"experience"`
	Interests          []string `json:"interests"`
	LocationPreference string   `json:"location_preference"`
}

type AnalysisResponse struct {
	Success          bool                        `json:"success"`
	WorkflowID       string                      `json:"workflow_id"`
	Report           usecase.ComprehensiveReport `json:"comprehensive_report"`
	DetailedAnalysis usecase.DetailedAnalysis    `json:"detailed_analysis"`
	Status           string                      `json:"status"`
}
