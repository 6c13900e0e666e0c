package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"job-board-service/internal/entity"
	"job-board-service/internal/httperr"
)

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db}
}

// Search runs the built job search query. Results are always ordered
// by date_posted descending, then company_handle, then title.
func (r *JobRepository) Search(ctx context.Context, f JobFilter) ([]entity.JobSummary, error) {
	query, params := BuildJobSearch(f)

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []entity.JobSummary{}
	for rows.Next() {
		var j entity.JobSummary
		if err := rows.Scan(&j.ID, &j.Title, &j.DatePosted, &j.Salary, &j.Equity); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

// Add inserts a job, letting the database assign id and date_posted.
// A foreign key violation means the company handle does not exist and
// comes back as a Not Found error naming the handle.
func (r *JobRepository) Add(ctx context.Context, j *entity.Job) (*entity.Job, error) {
	query := `INSERT INTO jobs (title, salary, equity, company_handle)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, salary, equity, company_handle, date_posted`

	created := &entity.Job{}
	err := r.db.QueryRowContext(ctx, query, j.Title, j.Salary, j.Equity, j.CompanyHandle).
		Scan(&created.ID, &created.Title, &created.Salary, &created.Equity, &created.CompanyHandle, &created.DatePosted)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, httperr.NotFound(fmt.Sprintf("No company with handle %s", j.CompanyHandle))
		}
		return nil, err
	}

	return created, nil
}

// GetByID returns the job or nil when no such job exists.
func (r *JobRepository) GetByID(ctx context.Context, id int) (*entity.Job, error) {
	query := `SELECT id, title, salary, equity, company_handle, date_posted
		FROM jobs WHERE id=$1`

	job := &entity.Job{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&job.ID, &job.Title, &job.Salary, &job.Equity, &job.CompanyHandle, &job.DatePosted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return job, nil
}

// Update executes a pre-built partial update query and returns the
// updated row, or nil when no row matched.
func (r *JobRepository) Update(ctx context.Context, query string, params []any) (*entity.Job, error) {
	updated := &entity.Job{}
	err := r.db.QueryRowContext(ctx, query, params...).
		Scan(&updated.ID, &updated.Title, &updated.Salary, &updated.Equity, &updated.CompanyHandle, &updated.DatePosted)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a job and returns the deleted id, or 0 when no row
// matched.
func (r *JobRepository) Delete(ctx context.Context, id int) (int, error) {
	query := `DELETE FROM jobs WHERE id=$1 RETURNING id`

	var deleted int
	err := r.db.QueryRowContext(ctx, query, id).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return deleted, nil
}
