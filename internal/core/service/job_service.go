package service

import (
	"context"
	"errors"

	"github.com/joblyhq/jobs-api/internal/core/domain"
	"github.com/joblyhq/jobs-api/internal/core/ports"
)

// JobService implements job use-cases. Reading a job's parent company is a
// second sequential lookup, not a SQL join; the parent can vanish between
// the two queries and the job is then returned with a nil company.
type JobService struct {
	jobs      ports.JobRepository
	companies ports.CompanyRepository
}

func NewJobService(jobs ports.JobRepository, companies ports.CompanyRepository) *JobService {
	return &JobService{jobs: jobs, companies: companies}
}

func (s *JobService) FindAll(ctx context.Context, filter domain.JobFilter) ([]domain.JobSummary, error) {
	return s.jobs.FindAll(ctx, filter)
}

func (s *JobService) Create(ctx context.Context, job domain.Job) (*domain.Job, error) {
	return s.jobs.Create(ctx, job)
}

func (s *JobService) FindOne(ctx context.Context, id int64) (*domain.JobDetail, error) {
	job, err := s.jobs.FindOne(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.JobDetail{Job: *job}

	company, err := s.companies.FindOne(ctx, job.CompanyHandle)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return detail, nil
		}
		return nil, err
	}
	detail.Company = &domain.CompanyProfile{
		Name:         company.Name,
		NumEmployees: company.NumEmployees,
		Description:  company.Description,
		LogoURL:      company.LogoURL,
	}
	return detail, nil
}

func (s *JobService) Update(ctx context.Context, id int64, fields domain.UpdateFields) (*domain.Job, error) {
	return s.jobs.Update(ctx, id, fields)
}

func (s *JobService) Delete(ctx context.Context, id int64) error {
	return s.jobs.Delete(ctx, id)
}
