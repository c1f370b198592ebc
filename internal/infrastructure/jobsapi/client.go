// Package jobsapi fetches live job postings from the remote listing API.
// Failures are returned to the caller, which is expected to fall back to
// the static job set.
package jobsapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"career-coach/internal/domain/job"
	"career-coach/internal/domain/taxonomy"
)

type Client interface {
	FetchJobs(ctx context.Context, skills []string) ([]job.Posting, error)
}

type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

// NewClient returns nil when no base URL is configured; callers treat a nil
// client as "live fetch disabled".
func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type listResponse struct {
	Jobs []listJob `json:"jobs"`
}

type listJob struct {
	ID              json.Number `json:"id"`
	Title           string      `json:"title"`
	CompanyName     string      `json:"company_name"`
	Location        string      `json:"candidate_required_location"`
	Salary          string      `json:"salary"`
	Description     string      `json:"description"`
	URL             string      `json:"url"`
	PublicationDate string      `json:"publication_date"`
	JobType         string      `json:"job_type"`
}

const maxFetchedJobs = 20

func (c *httpClient) FetchJobs(ctx context.Context, skills []string) ([]job.Posting, error) {
	if c == nil || c.client == nil {
		return nil, errors.New("nil jobs client")
	}

	endpoint := c.baseURL + "/remote-jobs"
	q := url.Values{}
	if len(skills) > 0 {
		terms := skills
		if len(terms) > 3 {
			terms = terms[:3]
		}
		q.Set("search", strings.Join(terms, " "))
	}
	if enc := q.Encode(); enc != "" {
		endpoint += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		err := fmt.Errorf("jobs api: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(rb)))
		if c.logger != nil {
			c.logger.Printf("[JobsAPI] fetch error endpoint=%s status=%d", endpoint, resp.StatusCode)
		}
		return nil, err
	}

	var out listResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("jobs api: decode: %w", err)
	}

	postings := make([]job.Posting, 0, len(out.Jobs))
	for _, j := range out.Jobs {
		if len(postings) >= maxFetchedJobs {
			break
		}
		postings = append(postings, toPosting(j))
	}
	return postings, nil
}

func toPosting(j listJob) job.Posting {
	salary := strings.TrimSpace(j.Salary)
	if salary == "" {
		salary = "Not specified"
	}
	jobType := j.JobType
	if jobType == "" {
		jobType = "Full-time"
	}
	return job.Posting{
		ID:              j.ID.String(),
		Title:           j.Title,
		Company:         j.CompanyName,
		Location:        locationOrRemote(j.Location),
		Salary:          salary,
		Description:     truncate(j.Description, 500),
		Requirements:    ExtractRequirements(j.Description),
		PostedAt:        formatPostedAt(j.PublicationDate),
		ApplyURL:        j.URL,
		JobType:         jobType,
		ExperienceLevel: ExperienceLevelFromTitle(j.Title),
		Remote:          true,
	}
}

func locationOrRemote(loc string) string {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return "Remote"
	}
	return loc
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

const maxRequirements = 6

// requirementPatterns matches taxonomy skills on word boundaries so "Java"
// does not fire inside "JavaScript" and "R" only matches standalone tokens.
var requirementPatterns = func() []struct {
	skill string
	re    *regexp.Regexp
} {
	all := taxonomy.All()
	out := make([]struct {
		skill string
		re    *regexp.Regexp
	}, 0, len(all))
	for _, s := range all {
		pattern := `(?i)(?:^|[^\w+#.])` + regexp.QuoteMeta(s) + `(?:[^\w+#.]|$)`
		out = append(out, struct {
			skill string
			re    *regexp.Regexp
		}{skill: s, re: regexp.MustCompile(pattern)})
	}
	return out
}()

// ExtractRequirements scans a job description for taxonomy skills, keeping
// the first few found.
func ExtractRequirements(description string) []string {
	reqs := []string{}
	for _, sp := range requirementPatterns {
		if len(reqs) >= maxRequirements {
			break
		}
		if sp.re.MatchString(description) {
			reqs = append(reqs, sp.skill)
		}
	}
	return reqs
}

func ExperienceLevelFromTitle(title string) string {
	lower := strings.ToLower(title)
	for _, w := range []string{"senior", "lead", "principal", "architect"} {
		if strings.Contains(lower, w) {
			return "Senior"
		}
	}
	for _, w := range []string{"junior", "entry", "graduate", "trainee"} {
		if strings.Contains(lower, w) {
			return "Entry-level"
		}
	}
	return "Mid-level"
}

func formatPostedAt(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Recently posted"
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		if t, err = time.Parse("2006-01-02T15:04:05", raw); err != nil {
			return "Recently posted"
		}
	}

	days := int(time.Since(t).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		weeks := days / 7
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	default:
		months := days / 30
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	}
}

var _ Client = (*httpClient)(nil)
