package handler

import "github.com/joblyhq/jobs-api/internal/core/domain"

// errorResponse documents the error envelope in swagger annotations; the
// central error handler renders it.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Companies ---

type createCompanyRequest struct {
	Handle       string  `json:"handle"        validate:"required"`
	Name         string  `json:"name"          validate:"required"`
	NumEmployees *int    `json:"num_employees" validate:"omitempty,gte=0"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url"      validate:"omitempty,url"`
}

// updateCompanyRequest covers PATCH bodies. Every field is optional; the
// handle is immutable and its presence in the body is rejected outright.
type updateCompanyRequest struct {
	Name         *string `json:"name"          validate:"omitempty,min=1"`
	NumEmployees *int    `json:"num_employees" validate:"omitempty,gte=0"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url"      validate:"omitempty,url"`
}

type companyListResponse struct {
	Companies []domain.CompanySummary `json:"companies"`
}

type companyResponse struct {
	Company *domain.Company `json:"company"`
}

// newCompanyResponse is the creation envelope. Unlike every other route,
// POST /companies keys the record as "newCompany"; clients depend on it.
type newCompanyResponse struct {
	NewCompany *domain.Company `json:"newCompany"`
}

// --- Jobs ---

type createJobRequest struct {
	Title         string   `json:"title"          validate:"required"`
	Salary        *float64 `json:"salary"         validate:"omitempty,gte=0"`
	Equity        *float64 `json:"equity"         validate:"omitempty,gte=0,lte=1"`
	CompanyHandle string   `json:"company_handle" validate:"required"`
}

type updateJobRequest struct {
	Title         *string  `json:"title"          validate:"omitempty,min=1"`
	Salary        *float64 `json:"salary"         validate:"omitempty,gte=0"`
	Equity        *float64 `json:"equity"         validate:"omitempty,gte=0,lte=1"`
	CompanyHandle *string  `json:"company_handle" validate:"omitempty,min=1"`
}

type jobListResponse struct {
	Jobs []domain.JobSummary `json:"jobs"`
}

type jobResponse struct {
	Job *domain.Job `json:"job"`
}

type jobDetailResponse struct {
	Job *domain.JobDetail `json:"job"`
}

// --- Users ---

type createUserRequest struct {
	Username  string  `json:"username"   validate:"required"`
	Password  string  `json:"password"   validate:"required,min=5"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	PhotoURL  *string `json:"photo_url"  validate:"omitempty,url"`
}

type updateUserRequest struct {
	Password  *string `json:"password"   validate:"omitempty,min=5"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"      validate:"omitempty,email"`
	PhotoURL  *string `json:"photo_url"  validate:"omitempty,url"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type userListResponse struct {
	Users []domain.PublicUser `json:"users"`
}

type userResponse struct {
	User *domain.PublicUser `json:"user"`
}
