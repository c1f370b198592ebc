package job

// Posting is a single job opening. MatchScore is computed per request by the
// ranking package and never stored here.
type Posting struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Location        string   `json:"location"`
	Salary          string   `json:"salary"`
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	PostedAt        string   `json:"posted_date"`
	ApplyURL        string   `json:"apply_url"`
	JobType         string   `json:"job_type"`
	ExperienceLevel string   `json:"experience_level"`
	Remote          bool     `json:"remote"`
}
