package app

import (
	"log"
	"os"

	"career-coach/internal/config"
	"career-coach/internal/infrastructure/cache"
	"career-coach/internal/infrastructure/jobsapi"
	"career-coach/internal/usecase"
	"career-coach/internal/workflow"
)

// Container holds every long-lived dependency the HTTP layer is wired from.
type Container struct {
	Config    config.Config
	Logger    *log.Logger
	Cache     *cache.Redis
	Workflows *workflow.Store

	ResumeUC     usecase.ResumeUsecase
	JobsUC       usecase.JobRecommendationUsecase
	CareerPathUC usecase.CareerPathUsecase
	AnalysisUC   usecase.CareerAnalysisUsecase
	WorkflowUC   usecase.WorkflowStatusUsecase
}

func NewContainer(cfg config.Config) *Container {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	redisCache := cache.NewRedis(logger)
	workflows := workflow.NewStore()

	jobsClient := jobsapi.NewClient(cfg.JobsAPI.BaseURL, cfg.JobsAPI.Timeout, logger)

	var jobsCache usecase.JobsCache
	if redisCache != nil {
		jobsCache = redisCache
	}

	jobsUC := usecase.NewJobRecommendationUsecase(jobsClient, jobsCache, logger)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Cache:     redisCache,
		Workflows: workflows,

		ResumeUC:     usecase.NewResumeUsecase(workflows, logger),
		JobsUC:       jobsUC,
		CareerPathUC: usecase.NewCareerPathUsecase(),
		AnalysisUC:   usecase.NewCareerAnalysisUsecase(jobsUC, workflows, logger),
		WorkflowUC:   usecase.NewWorkflowStatusUsecase(workflows),
	}
}

func (c *Container) Close() error {
	if c == nil || c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
