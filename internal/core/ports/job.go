package ports

import (
	"context"

	"github.com/joblyhq/jobs-api/internal/core/domain"
)

// JobRepository defines job persistence operations.
type JobRepository interface {
	FindAll(ctx context.Context, filter domain.JobFilter) ([]domain.JobSummary, error)
	Create(ctx context.Context, job domain.Job) (*domain.Job, error)
	FindOne(ctx context.Context, id int64) (*domain.Job, error)
	Update(ctx context.Context, id int64, fields domain.UpdateFields) (*domain.Job, error)
	Delete(ctx context.Context, id int64) error
}

// JobService defines job use-cases consumed by the HTTP layer.
type JobService interface {
	FindAll(ctx context.Context, filter domain.JobFilter) ([]domain.JobSummary, error)
	Create(ctx context.Context, job domain.Job) (*domain.Job, error)
	// FindOne embeds the parent company's public fields when the parent
	// still exists.
	FindOne(ctx context.Context, id int64) (*domain.JobDetail, error)
	Update(ctx context.Context, id int64, fields domain.UpdateFields) (*domain.Job, error)
	Delete(ctx context.Context, id int64) error
}
