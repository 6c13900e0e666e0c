package service

import (
	"context"
	"errors"
	"time"

	"job-board-service/internal/entity"
	"job-board-service/internal/repository"
)

type publishedEvent struct {
	entityType string
	action     string
	id         any
}

type fakePublisher struct {
	events []publishedEvent
}

func (p *fakePublisher) Publish(ctx context.Context, entityType, action string, id any, payload any) error {
	p.events = append(p.events, publishedEvent{entityType, action, id})
	return nil
}

type fakeSessions struct {
	saved   map[string]string
	dropped []string
}

func (s *fakeSessions) SaveToken(ctx context.Context, username, token string, ttl time.Duration) error {
	if s.saved == nil {
		s.saved = map[string]string{}
	}
	s.saved[username] = token
	return nil
}

func (s *fakeSessions) GetToken(ctx context.Context, username string) (string, error) {
	token, ok := s.saved[username]
	if !ok {
		return "", errors.New("session not found")
	}
	return token, nil
}

func (s *fakeSessions) DropToken(ctx context.Context, username string) error {
	s.dropped = append(s.dropped, username)
	delete(s.saved, username)
	return nil
}

type fakeUserStore struct {
	users map[string]*entity.User
	added *entity.User
}

func (s *fakeUserStore) Add(ctx context.Context, u *entity.User) (*entity.User, error) {
	s.added = u
	return u, nil
}

func (s *fakeUserStore) GetAll(ctx context.Context) ([]entity.UserSummary, error) {
	return []entity.UserSummary{}, nil
}

func (s *fakeUserStore) GetByUsername(ctx context.Context, username string) (*entity.UserProfile, error) {
	u, ok := s.users[username]
	if !ok {
		return nil, nil
	}
	return &entity.UserProfile{
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		PhotoURL:  u.PhotoURL,
	}, nil
}

func (s *fakeUserStore) GetCredentials(ctx context.Context, username string) (*entity.User, error) {
	return s.users[username], nil
}

func (s *fakeUserStore) Update(ctx context.Context, query string, params []any) (*entity.User, error) {
	return nil, nil
}

func (s *fakeUserStore) Delete(ctx context.Context, username string) (string, error) {
	if _, ok := s.users[username]; ok {
		return username, nil
	}
	return "", nil
}

type fakeCompanyStore struct {
	updateQuery  string
	updateParams []any
	updated      *entity.Company
	companies    map[string]*entity.Company
}

func (s *fakeCompanyStore) Search(ctx context.Context, f repository.CompanyFilter) ([]entity.CompanySummary, error) {
	return []entity.CompanySummary{}, nil
}

func (s *fakeCompanyStore) Add(ctx context.Context, c *entity.Company) (*entity.Company, error) {
	return c, nil
}

func (s *fakeCompanyStore) GetByHandle(ctx context.Context, handle string) (*entity.CompanyDetail, error) {
	c, ok := s.companies[handle]
	if !ok {
		return nil, nil
	}
	return &entity.CompanyDetail{Company: *c, Jobs: []entity.JobSummary{}}, nil
}

func (s *fakeCompanyStore) Update(ctx context.Context, query string, params []any) (*entity.Company, error) {
	s.updateQuery = query
	s.updateParams = params
	return s.updated, nil
}

func (s *fakeCompanyStore) Delete(ctx context.Context, handle string) (string, error) {
	if _, ok := s.companies[handle]; ok {
		return handle, nil
	}
	return "", nil
}

type fakeJobStore struct {
	jobs map[int]*entity.Job
}

func (s *fakeJobStore) Search(ctx context.Context, f repository.JobFilter) ([]entity.JobSummary, error) {
	return []entity.JobSummary{}, nil
}

func (s *fakeJobStore) Add(ctx context.Context, j *entity.Job) (*entity.Job, error) {
	return j, nil
}

func (s *fakeJobStore) GetByID(ctx context.Context, id int) (*entity.Job, error) {
	return s.jobs[id], nil
}

func (s *fakeJobStore) Update(ctx context.Context, query string, params []any) (*entity.Job, error) {
	return nil, nil
}

func (s *fakeJobStore) Delete(ctx context.Context, id int) (int, error) {
	if _, ok := s.jobs[id]; ok {
		return id, nil
	}
	return 0, nil
}
