package jobsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"
)

func TestNewClient_EmptyBaseURL(t *testing.T) {
	if c := NewClient("", 5*time.Second, nil); c != nil {
		t.Fatalf("expected nil client for empty base URL")
	}
	if c := NewClient("   ", 5*time.Second, nil); c != nil {
		t.Fatalf("expected nil client for blank base URL")
	}
}

func TestFetchJobs(t *testing.T) {
	var gotSearch string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/remote-jobs" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotSearch = r.URL.Query().Get("search")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs":[
			{"id":12345,"title":"Senior Python Developer","company_name":"Acme",
			 "candidate_required_location":"","salary":"",
			 "description":"We use Python and Docker heavily.",
			 "url":"https://example.com/1","publication_date":"","job_type":""}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	got, err := c.FetchJobs(context.Background(), []string{"Python", "Docker", "AWS", "React"})
	if err != nil {
		t.Fatalf("FetchJobs error: %v", err)
	}
	if gotSearch != "Python Docker AWS" {
		t.Fatalf("expected top-3 search terms, got %q", gotSearch)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 posting, got %d", len(got))
	}

	p := got[0]
	if p.ID != "12345" {
		t.Errorf("ID = %q", p.ID)
	}
	if p.Location != "Remote" {
		t.Errorf("Location = %q, want Remote default", p.Location)
	}
	if p.Salary != "Not specified" {
		t.Errorf("Salary = %q", p.Salary)
	}
	if p.JobType != "Full-time" {
		t.Errorf("JobType = %q", p.JobType)
	}
	if p.ExperienceLevel != "Senior" {
		t.Errorf("ExperienceLevel = %q", p.ExperienceLevel)
	}
	if p.PostedAt != "Recently posted" {
		t.Errorf("PostedAt = %q", p.PostedAt)
	}
	if !p.Remote {
		t.Errorf("expected remote posting")
	}
	want := []string{"Python", "Docker"}
	if len(p.Requirements) != len(want) {
		t.Fatalf("Requirements = %v", p.Requirements)
	}
	for i, r := range want {
		if p.Requirements[i] != r {
			t.Fatalf("Requirements = %v, want %v", p.Requirements, want)
		}
	}
}

func TestFetchJobs_CapsResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"jobs":[`))
		for i := 0; i < 30; i++ {
			if i > 0 {
				_, _ = w.Write([]byte(","))
			}
			_, _ = w.Write([]byte(`{"id":` + strconv.Itoa(i) + `,"title":"Engineer"}`))
		}
		_, _ = w.Write([]byte(`]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	got, err := c.FetchJobs(context.Background(), nil)
	if err != nil {
		t.Fatalf("FetchJobs error: %v", err)
	}
	if len(got) != maxFetchedJobs {
		t.Fatalf("expected %d postings, got %d", maxFetchedJobs, len(got))
	}
}

func TestFetchJobs_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second, nil)
	if _, err := c.FetchJobs(context.Background(), nil); err == nil {
		t.Fatalf("expected error for non-2xx status")
	}
}

func TestExperienceLevelFromTitle(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Senior Backend Engineer", "Senior"},
		{"Lead Developer", "Senior"},
		{"Principal Architect", "Senior"},
		{"Junior Developer", "Entry-level"},
		{"Graduate Software Engineer", "Entry-level"},
		{"Software Engineer", "Mid-level"},
		{"", "Mid-level"},
	}
	for _, tc := range cases {
		if got := ExperienceLevelFromTitle(tc.title); got != tc.want {
			t.Errorf("ExperienceLevelFromTitle(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

func TestFormatPostedAt(t *testing.T) {
	now := time.Now().UTC()
	cases := []struct {
		raw  string
		want string
	}{
		{"", "Recently posted"},
		{"not-a-date", "Recently posted"},
		{now.Format(time.RFC3339), "Today"},
		{now.AddDate(0, 0, -1).Format(time.RFC3339), "1 day ago"},
		{now.AddDate(0, 0, -3).Format(time.RFC3339), "3 days ago"},
		{now.AddDate(0, 0, -8).Format(time.RFC3339), "1 week ago"},
		{now.AddDate(0, 0, -15).Format(time.RFC3339), "2 weeks ago"},
		{now.AddDate(0, 0, -31).Format(time.RFC3339), "1 month ago"},
		{now.AddDate(0, 0, -65).Format(time.RFC3339), "2 months ago"},
	}
	for _, tc := range cases {
		if got := formatPostedAt(tc.raw); got != tc.want {
			t.Errorf("formatPostedAt(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
