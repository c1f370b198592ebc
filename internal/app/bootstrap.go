package app

import (
	"fmt"
	"strings"

	"career-coach/internal/config"
	"career-coach/internal/delivery/http/handler"
	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/delivery/http/routes"
	"career-coach/internal/workflow"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Workflows *workflow.Store
	Config    config.Config
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		BodyLimit: int(c.Config.Upload.MaxBytes) + 64*1024,
	})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Workflows: c.Workflows, Config: c.Config}
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c := NewContainer(cfg)
	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	registry := &routes.Registry{
		Health:     handler.NewHealthHandler(c.Config.App.AppName, c.Cache),
		Resume:     handler.NewResumeHandler(c.ResumeUC, c.Config.Upload.MaxBytes),
		Jobs:       handler.NewJobsHandler(c.JobsUC),
		CareerPath: handler.NewCareerPathHandler(c.CareerPathUC),
		Analysis:   handler.NewAnalysisHandler(c.AnalysisUC),
		Workflow:   handler.NewWorkflowHandler(c.WorkflowUC),
	}
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
