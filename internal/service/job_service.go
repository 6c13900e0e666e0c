package service

import (
	"context"
	"errors"

	"job-board-service/internal/entity"
	"job-board-service/internal/httperr"
	"job-board-service/internal/repository"
)

// JobStore is the persistence collaborator for jobs.
type JobStore interface {
	Search(ctx context.Context, f repository.JobFilter) ([]entity.JobSummary, error)
	Add(ctx context.Context, j *entity.Job) (*entity.Job, error)
	GetByID(ctx context.Context, id int) (*entity.Job, error)
	Update(ctx context.Context, query string, params []any) (*entity.Job, error)
	Delete(ctx context.Context, id int) (int, error)
}

type JobService struct {
	store  JobStore
	events EventPublisher
}

func NewJobService(store JobStore, events EventPublisher) *JobService {
	return &JobService{store: store, events: events}
}

// Search returns jobs matching the given filters, newest first.
func (s *JobService) Search(ctx context.Context, f repository.JobFilter) ([]entity.JobSummary, error) {
	jobs, err := s.store.Search(ctx, f)
	if err != nil {
		logger.Error().Err(err).Msg("Error searching jobs")
		return nil, err
	}

	return jobs, nil
}

// Add creates a job and publishes a created event. The company handle
// must reference an existing company.
func (s *JobService) Add(ctx context.Context, j *entity.Job) (*entity.Job, error) {
	created, err := s.store.Add(ctx, j)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating job")
		return nil, err
	}

	if err := s.events.Publish(ctx, "job", "created", created.ID, created); err != nil {
		return nil, err
	}

	return created, nil
}

// Get returns the job, or nil when it does not exist.
func (s *JobService) Get(ctx context.Context, id int) (*entity.Job, error) {
	job, err := s.store.GetByID(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting job %d", id)
		return nil, err
	}

	return job, nil
}

// Update applies a partial update to a job. An empty field set is a
// bad request; an update matching no row returns nil.
func (s *JobService) Update(ctx context.Context, id int, fields []repository.UpdateField) (*entity.Job, error) {
	query, params, err := repository.BuildPartialUpdate("jobs", fields, "id", id)
	if errors.Is(err, repository.ErrNoFields) {
		return nil, httperr.BadRequest("Must update at least one of the following: title, salary, equity")
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, query, params)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating job %d", id)
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}

	if err := s.events.Publish(ctx, "job", "updated", updated.ID, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a job and publishes a deleted event. Returns 0 when
// no such job exists.
func (s *JobService) Delete(ctx context.Context, id int) (int, error) {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting job %d", id)
		return 0, err
	}
	if deleted == 0 {
		return 0, nil
	}

	if err := s.events.Publish(ctx, "job", "deleted", deleted, map[string]int{"id": deleted}); err != nil {
		return 0, err
	}

	return deleted, nil
}
