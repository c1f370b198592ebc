package handler

import (
	"errors"

	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/pkg/response"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type WorkflowHandler struct {
	uc usecase.WorkflowStatusUsecase
}

func NewWorkflowHandler(uc usecase.WorkflowStatusUsecase) *WorkflowHandler {
	return &WorkflowHandler{uc: uc}
}

func (h *WorkflowHandler) HandleGetStatus(c fiber.Ctx) error {
	rec, err := h.uc.GetStatus(c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrWorkflowNotFound):
			return middleware.NewAppError(fiber.StatusNotFound, "Workflow not found", err)
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
		}
	}

	return response.JSON(c, fiber.StatusOK, rec)
}
