package domain

import "errors"

var ErrCompanyNotFound = errors.New("company not found")
var ErrCompanyExists = errors.New("company already exists")

// ErrEmployeeRange is returned when a list filter supplies both employee
// bounds and min is not strictly below max.
var ErrEmployeeRange = errors.New("min_employees must be less than max_employees")

// Company is keyed by its handle, an immutable natural identifier.
type Company struct {
	Handle       string  `json:"handle"`
	Name         string  `json:"name"`
	NumEmployees *int    `json:"num_employees"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url"`
}

// CompanySummary is the projection returned by company list queries.
type CompanySummary struct {
	Handle string `json:"handle"`
	Name   string `json:"name"`
}

// CompanyFilter narrows company list queries. Nil fields are ignored.
type CompanyFilter struct {
	MinEmployees *int
	MaxEmployees *int
	// Search is matched case-insensitively against the company name.
	Search string
}
