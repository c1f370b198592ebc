package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	JobsAPI  JobsAPIConfig
	Upload   UploadConfig
	Workflow WorkflowConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type JobsAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type UploadConfig struct {
	MaxBytes int64
}

type WorkflowConfig struct {
	MaxAge        time.Duration
	SweepInterval time.Duration
}

const (
	defaultJobsAPITimeout     = 10 * time.Second
	defaultMaxUploadBytes     = 5 * 1024 * 1024
	defaultWorkflowMaxAge     = 24 * time.Hour
	defaultWorkflowSweepEvery = time.Hour
)

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.JobsAPI = JobsAPIConfig{
		BaseURL: opt("JOBS_API_BASE_URL"),
		Timeout: secondsOrDefault(opt("JOBS_API_TIMEOUT_SECONDS"), defaultJobsAPITimeout),
	}

	cfg.Upload = UploadConfig{
		MaxBytes: int64OrDefault(opt("MAX_UPLOAD_BYTES"), defaultMaxUploadBytes),
	}

	cfg.Workflow = WorkflowConfig{
		MaxAge:        hoursOrDefault(opt("WORKFLOW_MAX_AGE_HOURS"), defaultWorkflowMaxAge),
		SweepInterval: hoursOrDefault(opt("WORKFLOW_SWEEP_INTERVAL_HOURS"), defaultWorkflowSweepEvery),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func secondsOrDefault(raw string, def time.Duration) time.Duration {
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Second
}

func hoursOrDefault(raw string, def time.Duration) time.Duration {
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return time.Duration(v) * time.Hour
}

func int64OrDefault(raw string, def int64) int64 {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}
