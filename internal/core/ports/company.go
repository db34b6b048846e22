package ports

import (
	"context"

	"github.com/joblyhq/jobs-api/internal/core/domain"
)

// CompanyRepository defines company persistence operations.
type CompanyRepository interface {
	FindAll(ctx context.Context, filter domain.CompanyFilter) ([]domain.CompanySummary, error)
	Create(ctx context.Context, company domain.Company) (*domain.Company, error)
	FindOne(ctx context.Context, handle string) (*domain.Company, error)
	Update(ctx context.Context, handle string, fields domain.UpdateFields) (*domain.Company, error)
	Delete(ctx context.Context, handle string) error
}

// CompanyService defines company use-cases consumed by the HTTP layer.
type CompanyService interface {
	FindAll(ctx context.Context, filter domain.CompanyFilter) ([]domain.CompanySummary, error)
	Create(ctx context.Context, company domain.Company) (*domain.Company, error)
	FindOne(ctx context.Context, handle string) (*domain.Company, error)
	Update(ctx context.Context, handle string, fields domain.UpdateFields) (*domain.Company, error)
	Delete(ctx context.Context, handle string) error
}
