package job

// fallbackPostings is the static job set served when the upstream listing
// API is unavailable or not configured.
var fallbackPostings = []Posting{
	{
		ID:              "job-1",
		Title:           "Senior Full Stack Developer",
		Company:         "TechCorp Inc.",
		Location:        "San Francisco, CA (Remote)",
		Salary:          "$120k - $180k",
		Description:     "We're looking for a passionate Full Stack Developer to join our growing team. You'll work on exciting projects using React, Node.js, and cloud technologies.",
		Requirements:    []string{"React", "Node.js", "JavaScript", "AWS"},
		PostedAt:        "2 days ago",
		ApplyURL:        "https://techcorp.com/careers/senior-fullstack",
		JobType:         "Full-time",
		ExperienceLevel: "Senior",
		Remote:          true,
	},
	{
		ID:              "job-2",
		Title:           "Frontend Developer",
		Company:         "StartupCo",
		Location:        "New York, NY",
		Salary:          "$100k - $140k",
		Description:     "Join our innovative startup as a Frontend Developer. You'll be working on cutting-edge web applications using React, TypeScript, and modern development tools.",
		Requirements:    []string{"React", "TypeScript", "JavaScript", "GraphQL"},
		PostedAt:        "1 week ago",
		ApplyURL:        "https://startupco.com/jobs/frontend-dev",
		JobType:         "Full-time",
		ExperienceLevel: "Mid-level",
		Remote:          false,
	},
	{
		ID:              "job-3",
		Title:           "Python Developer",
		Company:         "MegaCorp Solutions",
		Location:        "Remote",
		Salary:          "$110k - $160k",
		Description:     "We're seeking a skilled Python Developer to work on data-driven applications. Experience with Django, Flask, and data analysis libraries required.",
		Requirements:    []string{"Python", "Django", "Machine Learning", "Docker"},
		PostedAt:        "3 days ago",
		ApplyURL:        "https://megacorp.com/careers/python-developer",
		JobType:         "Full-time",
		ExperienceLevel: "Mid-level",
		Remote:          true,
	},
	{
		ID:              "job-4",
		Title:           "DevOps Engineer",
		Company:         "InnovateTech",
		Location:        "Austin, TX",
		Salary:          "$130k - $190k",
		Description:     "Looking for an experienced DevOps Engineer to manage our cloud infrastructure. Strong experience with AWS, Docker, and Kubernetes required.",
		Requirements:    []string{"AWS", "Docker", "Kubernetes", "Python"},
		PostedAt:        "5 days ago",
		ApplyURL:        "https://innovatetech.com/jobs/devops-engineer",
		JobType:         "Full-time",
		ExperienceLevel: "Senior",
		Remote:          false,
	},
	{
		ID:              "job-5",
		Title:           "Machine Learning Engineer",
		Company:         "AI Innovations",
		Location:        "Seattle, WA (Remote)",
		Salary:          "$140k - $200k",
		Description:     "Join our AI team to build cutting-edge machine learning models. Experience with TensorFlow, PyTorch, and cloud ML services required.",
		Requirements:    []string{"Machine Learning", "Python", "TensorFlow", "AWS"},
		PostedAt:        "1 day ago",
		ApplyURL:        "https://aiinnovations.com/careers/ml-engineer",
		JobType:         "Full-time",
		ExperienceLevel: "Senior",
		Remote:          true,
	},
}

// FallbackPostings returns a copy of the static job set.
func FallbackPostings() []Posting {
	out := make([]Posting, len(fallbackPostings))
	copy(out, fallbackPostings)
	return out
}
