package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"job-board-service/internal/entity"
	"job-board-service/internal/httperr"
	"job-board-service/internal/repository"
	"job-board-service/internal/token"
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = time.Hour

// UserStore is the persistence collaborator for users.
type UserStore interface {
	Add(ctx context.Context, u *entity.User) (*entity.User, error)
	GetAll(ctx context.Context) ([]entity.UserSummary, error)
	GetByUsername(ctx context.Context, username string) (*entity.UserProfile, error)
	GetCredentials(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, query string, params []any) (*entity.User, error)
	Delete(ctx context.Context, username string) (string, error)
}

// SessionStore keeps issued tokens while they are live.
type SessionStore interface {
	SaveToken(ctx context.Context, username, token string, ttl time.Duration) error
	DropToken(ctx context.Context, username string) error
}

type UserService struct {
	store      UserStore
	sessions   SessionStore
	secret     string
	bcryptCost int
}

func NewUserService(store UserStore, sessions SessionStore, secret string, bcryptCost int) *UserService {
	return &UserService{store: store, sessions: sessions, secret: secret, bcryptCost: bcryptCost}
}

// Register hashes the password, persists the user, and issues a token.
// Self-registration never grants admin, whatever the request said.
func (s *UserService) Register(ctx context.Context, u *entity.User) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	u.Password = string(hashed)
	u.IsAdmin = false

	created, err := s.store.Add(ctx, u)
	if err != nil {
		logger.Error().Err(err).Msg("Error creating user")
		return "", err
	}

	return s.issueToken(ctx, created.Username, created.IsAdmin)
}

// Authenticate checks a username and plaintext password against the
// stored hash. Unknown users and wrong passwords both come back as
// ok=false, never as an error.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (isAdmin bool, ok bool, err error) {
	user, err := s.store.GetCredentials(ctx, username)
	if err != nil {
		logger.Error().Err(err).Msgf("Error reading credentials for %s", username)
		return false, false, err
	}
	if user == nil {
		return false, false, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return false, false, nil
	}

	return user.IsAdmin, true, nil
}

// Login authenticates and issues a token carrying the stored admin
// flag. Bad credentials are a bad request.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	isAdmin, ok, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", httperr.BadRequest("Can't authenticate!")
	}

	return s.issueToken(ctx, username, isAdmin)
}

func (s *UserService) issueToken(ctx context.Context, username string, isAdmin bool) (string, error) {
	tkn, err := token.Sign(s.secret, username, isAdmin, TokenTTL)
	if err != nil {
		return "", err
	}

	if err := s.sessions.SaveToken(ctx, username, tkn, TokenTTL); err != nil {
		logger.Error().Err(err).Msgf("Error saving session for %s", username)
		return "", err
	}

	return tkn, nil
}

// GetAll lists every user.
func (s *UserService) GetAll(ctx context.Context) ([]entity.UserSummary, error) {
	users, err := s.store.GetAll(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error listing users")
		return nil, err
	}

	return users, nil
}

// Get returns a user's public fields, or nil when no such user exists.
func (s *UserService) Get(ctx context.Context, username string) (*entity.UserProfile, error) {
	user, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting user %s", username)
		return nil, err
	}

	return user, nil
}

// Update applies a partial update to a user. An empty field set is a
// bad request; an update matching no row returns nil.
func (s *UserService) Update(ctx context.Context, username string, fields []repository.UpdateField) (*entity.User, error) {
	query, params, err := repository.BuildPartialUpdate("users", fields, "username", username)
	if errors.Is(err, repository.ErrNoFields) {
		return nil, httperr.BadRequest("Must update one of the following: first_name, last_name, email, photo_url")
	}
	if err != nil {
		return nil, err
	}

	updated, err := s.store.Update(ctx, query, params)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating user %s", username)
		return nil, err
	}

	return updated, nil
}

// Delete removes a user and ends their live session. Returns "" when
// no such user exists.
func (s *UserService) Delete(ctx context.Context, username string) (string, error) {
	deleted, err := s.store.Delete(ctx, username)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting user %s", username)
		return "", err
	}
	if deleted == "" {
		return "", nil
	}

	if err := s.sessions.DropToken(ctx, username); err != nil {
		logger.Warn().Err(err).Msgf("Error dropping session for %s", username)
	}

	return deleted, nil
}
