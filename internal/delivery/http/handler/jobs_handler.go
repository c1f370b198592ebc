package handler

import (
	"strconv"
	"strings"

	"career-coach/internal/delivery/http/dto"
	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/domain/ranking"
	"career-coach/internal/pkg/response"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc usecase.JobRecommendationUsecase
}

func NewJobsHandler(uc usecase.JobRecommendationUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

func (h *JobsHandler) HandleGetJobs(c fiber.Ctx) error {
	skills := parseSkillsQuery(c.Query("skills"))

	minSalary, err := parseQueryIntStrict(c, "min_salary", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	result, err := h.uc.SearchJobs(c.Context(), usecase.JobSearchParams{
		Skills: skills,
		Filters: ranking.Filters{
			Location:   c.Query("location"),
			Experience: c.Query("experience"),
			MinSalary:  minSalary,
		},
	})
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, dto.JobsResponse{
		Success:             true,
		Jobs:                result.Jobs,
		Total:               result.Total,
		Source:              result.Source,
		GapAnalysis:         result.GapAnalysis,
		ApplicationStrategy: result.Strategy,
	})
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func parseSkillsQuery(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
