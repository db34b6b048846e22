package domain

import "errors"

var ErrJobNotFound = errors.New("job not found")

// Job references its company by handle; the database cascades deletes from
// companies to jobs.
type Job struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Salary        *float64 `json:"salary"`
	Equity        *float64 `json:"equity"`
	CompanyHandle string   `json:"company_handle"`
}

// JobSummary is the projection returned by job list queries.
type JobSummary struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	CompanyHandle string `json:"company_handle"`
}

// JobDetail is a job with a snapshot of its parent company's public fields.
// Company is nil when the parent was deleted between the two lookups.
type JobDetail struct {
	Job
	Company *CompanyProfile `json:"company"`
}

// CompanyProfile is the public slice of a company embedded in a job detail.
type CompanyProfile struct {
	Name         string  `json:"name"`
	NumEmployees *int    `json:"num_employees"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url"`
}

// JobFilter narrows job list queries. Nil fields are ignored.
type JobFilter struct {
	MinSalary *float64
	MaxEquity *float64
	// Search is matched case-insensitively against the job title.
	Search string
}
