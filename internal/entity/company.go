package entity

// Company is a listed company, identified by its handle.
type Company struct {
	Handle       string `json:"handle"`
	Name         string `json:"name"`
	NumEmployees int    `json:"num_employees"`
	Description  string `json:"description"`
	LogoURL      string `json:"logo_url"`
}

// CompanyDetail is the single-company response shape. Jobs is always
// present in the JSON, as an empty array when the company has none.
type CompanyDetail struct {
	Company
	Jobs []JobSummary `json:"jobs"`
}

// CompanySummary is the shape returned by company searches.
type CompanySummary struct {
	Handle string `json:"handle"`
	Name   string `json:"name"`
}
