package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/joblyhq/jobs-api/internal/core/domain"
)

// CompanyRepository persists companies. Uniqueness of handle and name is
// enforced by table constraints and surfaced as domain.ErrCompanyExists.
type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// companyColumns is the table's column order; RETURNING * scans rely on it.
const companyColumns = "handle, name, num_employees, description, logo_url"

func (r *CompanyRepository) FindAll(ctx context.Context, filter domain.CompanyFilter) ([]domain.CompanySummary, error) {
	var where WhereBuilder
	if filter.MinEmployees != nil {
		where.And("num_employees >= $%d", *filter.MinEmployees)
	}
	if filter.MaxEmployees != nil {
		where.And("num_employees <= $%d", *filter.MaxEmployees)
	}
	if filter.Search != "" {
		where.And("name ILIKE $%d", "%"+filter.Search+"%")
	}

	query := "SELECT handle, name FROM companies" + where.Clause() + " ORDER BY name"
	rows, err := r.db.QueryContext(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]domain.CompanySummary, 0)
	for rows.Next() {
		var c domain.CompanySummary
		if err := rows.Scan(&c.Handle, &c.Name); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *CompanyRepository) Create(ctx context.Context, company domain.Company) (*domain.Company, error) {
	query := fmt.Sprintf(`
		INSERT INTO companies (handle, name, num_employees, description, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING %s`, companyColumns)

	var created domain.Company
	err := r.db.QueryRowContext(ctx, query,
		company.Handle,
		company.Name,
		company.NumEmployees,
		company.Description,
		company.LogoURL,
	).Scan(&created.Handle, &created.Name, &created.NumEmployees, &created.Description, &created.LogoURL)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrCompanyExists
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return &created, nil
}

func (r *CompanyRepository) FindOne(ctx context.Context, handle string) (*domain.Company, error) {
	query := fmt.Sprintf("SELECT %s FROM companies WHERE handle = $1", companyColumns)

	var c domain.Company
	err := r.db.QueryRowContext(ctx, query, handle).
		Scan(&c.Handle, &c.Name, &c.NumEmployees, &c.Description, &c.LogoURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return &c, nil
}

func (r *CompanyRepository) Update(ctx context.Context, handle string, fields domain.UpdateFields) (*domain.Company, error) {
	query, args, err := PartialUpdate("companies", "handle", handle, fields)
	if err != nil {
		return nil, err
	}

	var c domain.Company
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&c.Handle, &c.Name, &c.NumEmployees, &c.Description, &c.LogoURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrCompanyExists
		}
		if isNotNullViolation(err) {
			return nil, domain.ErrNullColumn
		}
		return nil, fmt.Errorf("update company: %w", err)
	}
	return &c, nil
}

func (r *CompanyRepository) Delete(ctx context.Context, handle string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM companies WHERE handle = $1", handle)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}
