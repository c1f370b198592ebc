package routes

import (
	"career-coach/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health     *handler.HealthHandler
	Resume     *handler.ResumeHandler
	Jobs       *handler.JobsHandler
	CareerPath *handler.CareerPathHandler
	Analysis   *handler.AnalysisHandler
	Workflow   *handler.WorkflowHandler
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", r.Health.HandleHealth)

	api := app.Group("/api")
	api.Post("/parse-resume", r.Resume.HandleParseResume)
	api.Get("/jobs", r.Jobs.HandleGetJobs)
	api.Get("/career-paths", r.CareerPath.HandleGetCareerPaths)
	api.Post("/analysis", r.Analysis.HandleComprehensiveAnalysis)
	api.Get("/workflows/:id", r.Workflow.HandleGetStatus)
}
