package service

import (
	"context"

	"github.com/joblyhq/jobs-api/internal/core/domain"
	"github.com/joblyhq/jobs-api/internal/core/ports"
)

// CompanyService implements company use-cases over a repository.
type CompanyService struct {
	repo ports.CompanyRepository
}

func NewCompanyService(repo ports.CompanyRepository) *CompanyService {
	return &CompanyService{repo: repo}
}

func (s *CompanyService) FindAll(ctx context.Context, filter domain.CompanyFilter) ([]domain.CompanySummary, error) {
	if filter.MinEmployees != nil && filter.MaxEmployees != nil &&
		*filter.MinEmployees >= *filter.MaxEmployees {
		return nil, domain.ErrEmployeeRange
	}
	return s.repo.FindAll(ctx, filter)
}

func (s *CompanyService) Create(ctx context.Context, company domain.Company) (*domain.Company, error) {
	return s.repo.Create(ctx, company)
}

func (s *CompanyService) FindOne(ctx context.Context, handle string) (*domain.Company, error) {
	return s.repo.FindOne(ctx, handle)
}

func (s *CompanyService) Update(ctx context.Context, handle string, fields domain.UpdateFields) (*domain.Company, error) {
	return s.repo.Update(ctx, handle, fields)
}

func (s *CompanyService) Delete(ctx context.Context, handle string) error {
	return s.repo.Delete(ctx, handle)
}
