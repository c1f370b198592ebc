package handler

import (
	"errors"

	"career-coach/internal/delivery/http/dto"
	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/pkg/response"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AnalysisHandler struct {
	uc usecase.CareerAnalysisUsecase
}

func NewAnalysisHandler(uc usecase.CareerAnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

func (h *AnalysisHandler) HandleComprehensiveAnalysis(c fiber.Ctx) error {
	var req dto.AnalysisRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	result, err := h.uc.Comprehensive(c.Context(), usecase.AnalysisInput{
		Skills:             req.Skills,
		Experience:         req.Experience,
		Interests:          req.Interests,
		LocationPreference: req.LocationPreference,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "No skills provided", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, dto.AnalysisResponse{
		Success:          true,
		WorkflowID:       result.WorkflowID,
		Report:           result.Report,
		DetailedAnalysis: result.Detailed,
		Status:           "completed",
	})
}
