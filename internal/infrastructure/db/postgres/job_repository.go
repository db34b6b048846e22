package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/joblyhq/jobs-api/internal/core/domain"
)

// JobRepository persists jobs. The company_handle foreign key is enforced
// by the database; a missing parent surfaces as domain.ErrCompanyNotFound.
type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = "id, title, salary, equity, company_handle"

func (r *JobRepository) FindAll(ctx context.Context, filter domain.JobFilter) ([]domain.JobSummary, error) {
	var where WhereBuilder
	if filter.MinSalary != nil {
		where.And("salary >= $%d", *filter.MinSalary)
	}
	if filter.MaxEquity != nil {
		where.And("equity <= $%d", *filter.MaxEquity)
	}
	if filter.Search != "" {
		where.And("title ILIKE $%d", "%"+filter.Search+"%")
	}

	query := "SELECT id, title, company_handle FROM jobs" + where.Clause()
	rows, err := r.db.QueryContext(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]domain.JobSummary, 0)
	for rows.Next() {
		var j domain.JobSummary
		if err := rows.Scan(&j.ID, &j.Title, &j.CompanyHandle); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *JobRepository) Create(ctx context.Context, job domain.Job) (*domain.Job, error) {
	query := fmt.Sprintf(`
		INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, jobColumns)

	var created domain.Job
	err := r.db.QueryRowContext(ctx, query,
		job.Title,
		job.Salary,
		job.Equity,
		job.CompanyHandle,
	).Scan(&created.ID, &created.Title, &created.Salary, &created.Equity, &created.CompanyHandle)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return &created, nil
}

func (r *JobRepository) FindOne(ctx context.Context, id int64) (*domain.Job, error) {
	query := fmt.Sprintf("SELECT %s FROM jobs WHERE id = $1", jobColumns)

	var j domain.Job
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	return &j, nil
}

func (r *JobRepository) Update(ctx context.Context, id int64, fields domain.UpdateFields) (*domain.Job, error) {
	query, args, err := PartialUpdate("jobs", "id", id, fields)
	if err != nil {
		return nil, err
	}

	var j domain.Job
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&j.ID, &j.Title, &j.Salary, &j.Equity, &j.CompanyHandle)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrCompanyNotFound
		}
		if isNotNullViolation(err) {
			return nil, domain.ErrNullColumn
		}
		return nil, fmt.Errorf("update job: %w", err)
	}
	return &j, nil
}

func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}
