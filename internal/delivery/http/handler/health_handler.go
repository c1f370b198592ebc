package handler

import (
	"context"
	"time"

	"career-coach/internal/delivery/http/dto"
	"career-coach/internal/pkg/response"
	"career-coach/internal/resume"

	"github.com/gofiber/fiber/v3"
)

type cachePinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	appName string
	cache   cachePinger
}

func NewHealthHandler(appName string, cache cachePinger) *HealthHandler {
	return &HealthHandler{appName: appName, cache: cache}
}

func (h *HealthHandler) HandleHealth(c fiber.Ctx) error {
	cacheUp := false
	if h.cache != nil {
		cacheUp = h.cache.Ping(c.Context()) == nil
	}

	return response.JSON(c, fiber.StatusOK, dto.HealthResponse{
		Status:     "healthy",
		Service:    h.appName,
		Extractors: resume.Extractors(),
		Cache:      cacheUp,
		Timestamp:  time.Now().UTC(),
	})
}
