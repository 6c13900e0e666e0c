package service

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"

	"job-board-service/internal/entity"
	"job-board-service/internal/httperr"
	"job-board-service/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// CompanyStore is the persistence collaborator for companies. The
// repository implements it; tests substitute fakes.
type CompanyStore interface {
	Search(ctx context.Context, f repository.CompanyFilter) ([]entity.CompanySummary, error)
	Add(ctx context.Context, c *entity.Company) (*entity.Company, error)
	GetByHandle(ctx context.Context, handle string) (*entity.CompanyDetail, error)
	Update(ctx context.Context, query string, params []any) (*entity.Company, error)
	Delete(ctx context.Context, handle string) (string, error)
}

// EventPublisher emits entity change events.
type EventPublisher interface {
	Publish(ctx context.Context, entityType, action string, id any, payload any) error
}

type CompanyService struct {
	store  CompanyStore
	events EventPublisher
}

func NewCompanyService(store CompanyStore, events EventPublisher) *CompanyService {
	return &CompanyService{store: store, events: events}
}

// Search returns companies matching the given filters.
func (s *CompanyService) Search(ctx context.Context, f repository.CompanyFilter) ([]entity.CompanySummary, error) {
	companies, err := s.store.Search(ctx, f)
	if err != nil {
		logger.Error().Err(err).Msg("Error searching companies")
		return nil, err
	}

	return companies, nil
}

// Add creates a company and publishes a created event.
func (s *CompanyService) Add(ctx context.Context, c *entity.Company) (*entity.Company, error) {
	created, err := s.store.Add(ctx, c)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating company")
		return nil, err
	}

	if err := s.events.Publish(ctx, "company", "created", created.Handle, created); err != nil {
		return nil, err
	}

	return created, nil
}

// Get returns a company with its jobs, or nil when it does not exist.
func (s *CompanyService) Get(ctx context.Context, handle string) (*entity.CompanyDetail, error) {
	company, err := s.store.GetByHandle(ctx, handle)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting company %s", handle)
		return nil, err
	}

	return company, nil
}

// Update applies a partial update to a company. An empty field set is
// a bad request; an update matching no row returns nil.
func (s *CompanyService) Update(ctx context.Context, handle string, fields []repository.UpdateField) (*entity.Company, error) {
	query, params, err := repository.BuildPartialUpdate("companies", fields, "handle", handle)
	if errors.Is(err, repository.ErrNoFields) {
		return nil, httperr.BadRequest("Must update at least one of the following: name, num_employees, description, logo_url")
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, query, params)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating company %s", handle)
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}

	if err := s.events.Publish(ctx, "company", "updated", updated.Handle, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes a company and publishes a deleted event. Returns ""
// when no such company exists.
func (s *CompanyService) Delete(ctx context.Context, handle string) (string, error) {
	deleted, err := s.store.Delete(ctx, handle)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting company %s", handle)
		return "", err
	}
	if deleted == "" {
		return "", nil
	}

	if err := s.events.Publish(ctx, "company", "deleted", deleted, map[string]string{"handle": deleted}); err != nil {
		return "", err
	}

	return deleted, nil
}
