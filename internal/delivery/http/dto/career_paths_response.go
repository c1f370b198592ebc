package dto

import "career-coach/internal/domain/career"

type CareerPathsResponse struct {
	Success    bool                    `json:"success"`
	Paths      []career.QuickPathMatch `json:"paths"`
	UserSkills []string                `json:"userSkills"`
}
