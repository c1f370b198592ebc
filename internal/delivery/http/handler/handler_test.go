package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"career-coach/internal/delivery/http/handler"
	"career-coach/internal/delivery/http/middleware"
	"career-coach/internal/delivery/http/routes"
	"career-coach/internal/usecase"
	"career-coach/internal/workflow"

	"github.com/gofiber/fiber/v3"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware().Middleware())

	store := workflow.NewStore()
	jobsUC := usecase.NewJobRecommendationUsecase(nil, nil, nil)

	registry := &routes.Registry{
		Health:     handler.NewHealthHandler("career-coach", nil),
		Resume:     handler.NewResumeHandler(usecase.NewResumeUsecase(store, nil), 5*1024*1024),
		Jobs:       handler.NewJobsHandler(jobsUC),
		CareerPath: handler.NewCareerPathHandler(usecase.NewCareerPathUsecase()),
		Analysis:   handler.NewAnalysisHandler(usecase.NewCareerAnalysisUsecase(jobsUC, store, nil)),
		Workflow:   handler.NewWorkflowHandler(usecase.NewWorkflowStatusUsecase(store)),
	}
	registry.Register(app)
	return app
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Status     string          `json:"status"`
		Extractors map[string]bool `json:"extractors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Status != "healthy" {
		t.Fatalf("expected healthy, got %q", body.Status)
	}
	if !body.Extractors["pdf"] || !body.Extractors["docx"] {
		t.Fatalf("expected extractor flags, got %v", body.Extractors)
	}
}

func TestCareerPathsEndpoint_DefaultSkills(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/career-paths", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Success    bool     `json:"success"`
		UserSkills []string `json:"userSkills"`
		Paths      []struct {
			ID              string `json:"id"`
			MatchPercentage int    `json:"match_percentage"`
		} `json:"paths"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !body.Success {
		t.Fatalf("expected success")
	}
	if len(body.UserSkills) != 3 {
		t.Fatalf("expected default skills, got %v", body.UserSkills)
	}
	if len(body.Paths) != 4 {
		t.Fatalf("expected 4 paths, got %d", len(body.Paths))
	}
}

func TestJobsEndpoint_FallbackSource(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/jobs?skills=Python,React", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Success bool   `json:"success"`
		Source  string `json:"source"`
		Total   int    `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !body.Success || body.Source != "fallback_data" {
		t.Fatalf("expected fallback source, got %+v", body)
	}
	if body.Total != 5 {
		t.Fatalf("expected 5 jobs, got %d", body.Total)
	}
}

func TestJobsEndpoint_BadMinSalary(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/jobs?min_salary=abc", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Error == "" {
		t.Fatalf("expected error message")
	}
}

func TestAnalysisEndpoint_NoSkills(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("POST", "/api/analysis", strings.NewReader(`{"skills":[]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestAnalysisEndpoint_Success(t *testing.T) {
	app := newTestApp(t)

	payload := `{"skills":["Python","AWS"],"experience":"3 years","interests":["AI"],"location_preference":"Remote"}`
	req := httptest.NewRequest("POST", "/api/analysis", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Success    bool   `json:"success"`
		WorkflowID string `json:"workflow_id"`
		Status     string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !body.Success || body.WorkflowID == "" || body.Status != "completed" {
		t.Fatalf("unexpected body %+v", body)
	}

	// The workflow endpoint must see the finished workflow.
	resp2, err := app.Test(httptest.NewRequest("GET", "/api/workflows/"+body.WorkflowID, nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for known workflow, got %d", resp2.StatusCode)
	}
}

func TestWorkflowEndpoint_NotFound(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/workflows/nope", nil))
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Error != "Workflow not found" {
		t.Fatalf("unexpected error message %q", body.Error)
	}
}

func TestParseResumeEndpoint(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("resume", "resume.txt")
	if err != nil {
		t.Fatalf("form error: %v", err)
	}
	_, _ = io.WriteString(fw, "Jane Doe\njane@example.com\nSKILLS\nPython, React\nExperience: 4 years\n")
	_ = mw.Close()

	req := httptest.NewRequest("POST", "/api/parse-resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Success    bool   `json:"success"`
		FileName   string `json:"fileName"`
		Score      int    `json:"score"`
		Message    string `json:"message"`
		ParsedData struct {
			Name   string   `json:"name"`
			Skills []string `json:"skills"`
		} `json:"parsedData"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !body.Success || body.FileName != "resume.txt" {
		t.Fatalf("unexpected body %+v", body)
	}
	if body.ParsedData.Name != "Jane Doe" {
		t.Fatalf("expected parsed name, got %q", body.ParsedData.Name)
	}
	if body.Message != "Resume parsed successfully" {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if body.Score <= 0 {
		t.Fatalf("expected positive score, got %d", body.Score)
	}
}

func TestParseResumeEndpoint_MissingFile(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.Close()

	req := httptest.NewRequest("POST", "/api/parse-resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Error != "No file uploaded" {
		t.Fatalf("unexpected error %q", body.Error)
	}
}

func TestParseResumeEndpoint_BadExtension(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, _ := mw.CreateFormFile("resume", "resume.exe")
	_, _ = io.WriteString(fw, "binary")
	_ = mw.Close()

	req := httptest.NewRequest("POST", "/api/parse-resume", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if body.Error != "File type not allowed" {
		t.Fatalf("unexpected error %q", body.Error)
	}
}
