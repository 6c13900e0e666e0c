package entity

import "time"

// Job is a job posting attached to a company by handle.
type Job struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Salary        float64   `json:"salary"`
	Equity        float64   `json:"equity"`
	CompanyHandle string    `json:"company_handle"`
	DatePosted    time.Time `json:"date_posted"`
}

// JobSummary is the shape returned by job searches and by the jobs
// list nested under a company.
type JobSummary struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	DatePosted time.Time `json:"date_posted"`
	Salary     float64   `json:"salary"`
	Equity     float64   `json:"equity"`
}
