package handler

import (
	"errors"
	"io"

	"career-coach/internal/delivery/http/dto"
	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/pkg/response"
	"career-coach/internal/resume"
	"career-coach/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	uc       usecase.ResumeUsecase
	maxBytes int64
}

func NewResumeHandler(uc usecase.ResumeUsecase, maxBytes int64) *ResumeHandler {
	return &ResumeHandler{uc: uc, maxBytes: maxBytes}
}

func (h *ResumeHandler) HandleParseResume(c fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded", err)
	}
	if fh.Filename == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file selected", nil)
	}
	if !resume.AllowedFile(fh.Filename) {
		return middleware.NewAppError(fiber.StatusBadRequest, "File type not allowed", nil)
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "File too large", nil)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}

	res, err := h.uc.ProcessResume(c.Context(), fh.Filename, data)
	if err != nil {
		return mapResumeError(err)
	}

	return response.JSON(c, fiber.StatusOK, dto.ParseResumeResponse{
		Success:    true,
		WorkflowID: res.WorkflowID,
		FileName:   res.FileName,
		Content:    res.Content,
		ParsedData: res.Parsed,
		Score:      res.Score,
		Analysis:   res.Analysis,
		Message:    "Resume parsed successfully",
	})
}

func mapResumeError(err error) error {
	switch {
	case errors.Is(err, resume.ErrUnsupportedFileType):
		return middleware.NewAppError(fiber.StatusBadRequest, "File type not allowed", err)
	case errors.Is(err, usecase.ErrNoTextExtracted):
		return middleware.NewAppError(fiber.StatusBadRequest, "Could not extract text from file", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
