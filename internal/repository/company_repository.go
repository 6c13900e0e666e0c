package repository

import (
	"context"
	"database/sql"
	"errors"

	"job-board-service/internal/entity"
	"job-board-service/internal/httperr"
)

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db}
}

// Search runs the built search query and returns the matching handle
// and name pairs.
func (r *CompanyRepository) Search(ctx context.Context, f CompanyFilter) ([]entity.CompanySummary, error) {
	query, params := BuildCompanySearch(f)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := []entity.CompanySummary{}
	for rows.Next() {
		var c entity.CompanySummary
		if err := rows.Scan(&c.Handle, &c.Name); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}

	return companies, rows.Err()
}

// Add inserts a company and returns the created row. A uniqueness
// violation on handle or name comes back as a Conflict error.
func (r *CompanyRepository) Add(ctx context.Context, c *entity.Company) (*entity.Company, error) {
	query := `INSERT INTO companies (handle, name, num_employees, description, logo_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING handle, name, num_employees, description, logo_url`

	created := &entity.Company{}
	err := r.db.QueryRowContext(ctx, query, c.Handle, c.Name, c.NumEmployees, c.Description, c.LogoURL).
		Scan(&created.Handle, &created.Name, &created.NumEmployees, &created.Description, &created.LogoURL)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, httperr.Conflict("Company handle and name must be unique")
		}
		return nil, err
	}

	return created, nil
}

// GetByHandle returns the company with its jobs, newest first, or nil
// when no such company exists. The two reads are independent
// statements; the job list is not transactionally tied to the company
// row.
func (r *CompanyRepository) GetByHandle(ctx context.Context, handle string) (*entity.CompanyDetail, error) {
	companyQuery := `SELECT handle, name, num_employees, description, logo_url
		FROM companies WHERE handle=$1`
	jobsQuery := `SELECT id, title, date_posted, salary, equity
		FROM jobs WHERE company_handle=$1 ORDER BY date_posted DESC`

	company := &entity.CompanyDetail{}
	err := r.db.QueryRowContext(ctx, companyQuery, handle).
		Scan(&company.Handle, &company.Name, &company.NumEmployees, &company.Description, &company.LogoURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, jobsQuery, handle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	company.Jobs = []entity.JobSummary{}
	for rows.Next() {
		var j entity.JobSummary
		if err := rows.Scan(&j.ID, &j.Title, &j.DatePosted, &j.Salary, &j.Equity); err != nil {
			return nil, err
		}
		company.Jobs = append(company.Jobs, j)
	}

	return company, rows.Err()
}

// Update executes a pre-built partial update query and returns the
// updated row, or nil when no row matched.
func (r *CompanyRepository) Update(ctx context.Context, query string, params []any) (*entity.Company, error) {
	updated := &entity.Company{}
	err := r.db.QueryRowContext(ctx, query, params...).
		Scan(&updated.Handle, &updated.Name, &updated.NumEmployees, &updated.Description, &updated.LogoURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, httperr.Conflict("Company handle and name must be unique")
		}
		return nil, err
	}

	return updated, nil
}

// Delete removes a company and returns the deleted handle, or "" when
// no row matched.
func (r *CompanyRepository) Delete(ctx context.Context, handle string) (string, error) {
	query := `DELETE FROM companies WHERE handle=$1 RETURNING handle`

	var deleted string
	err := r.db.QueryRowContext(ctx, query, handle).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return deleted, nil
}
