package handler

import (
	"career-coach/internal/delivery/http/dto"
	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/pkg/response"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CareerPathHandler struct {
	uc usecase.CareerPathUsecase
}

func NewCareerPathHandler(uc usecase.CareerPathUsecase) *CareerPathHandler {
	return &CareerPathHandler{uc: uc}
}

func (h *CareerPathHandler) HandleGetCareerPaths(c fiber.Ctx) error {
	skills := parseSkillsQuery(c.Query("skills"))

	result, err := h.uc.GetCareerPaths(c.Context(), skills)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	return response.JSON(c, fiber.StatusOK, dto.CareerPathsResponse{
		Success:    true,
		Paths:      result.Paths,
		UserSkills: result.UserSkills,
	})
}
