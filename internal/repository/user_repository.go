package repository

import (
	"context"
	"database/sql"
	"errors"

	"job-board-service/internal/entity"
	"job-board-service/internal/httperr"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db}
}

// Add inserts a user. The password is expected to already be hashed by
// the caller. A uniqueness violation on username or email comes back
// as a Conflict error.
func (r *UserRepository) Add(ctx context.Context, u *entity.User) (*entity.User, error) {
	query := `INSERT INTO users (username, password, first_name, last_name, email, photo_url, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING username, first_name, last_name, email, photo_url, is_admin`

	created := &entity.User{}
	err := r.db.QueryRowContext(ctx, query,
		u.Username, u.Password, u.FirstName, u.LastName, u.Email, u.PhotoURL, u.IsAdmin).
		Scan(&created.Username, &created.FirstName, &created.LastName, &created.Email, &created.PhotoURL, &created.IsAdmin)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, httperr.Conflict("username and email must be unique")
		}
		return nil, err
	}

	return created, nil
}

// GetAll lists every user, ordered by username.
func (r *UserRepository) GetAll(ctx context.Context) ([]entity.UserSummary, error) {
	query := `SELECT username, first_name, last_name, email FROM users ORDER BY username`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []entity.UserSummary{}
	for rows.Next() {
		var u entity.UserSummary
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// GetByUsername returns the user's public fields, or nil when no such
// user exists. The admin flag stays out of the profile.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.UserProfile, error) {
	query := `SELECT username, first_name, last_name, email, photo_url
		FROM users WHERE username=$1`

	user := &entity.UserProfile{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.Username, &user.FirstName, &user.LastName, &user.Email, &user.PhotoURL)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetCredentials returns the stored password hash and admin flag for a
// username, or nil when no such user exists. Only the authenticate
// path reads the hash.
func (r *UserRepository) GetCredentials(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT username, password, is_admin FROM users WHERE username=$1`

	user := &entity.User{}
	err := r.db.QueryRowContext(ctx, query, username).
		Scan(&user.Username, &user.Password, &user.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Update executes a pre-built partial update query and returns the
// updated row, or nil when no row matched. A uniqueness violation on
// email comes back as a Conflict error.
func (r *UserRepository) Update(ctx context.Context, query string, params []any) (*entity.User, error) {
	updated := &entity.User{}
	err := r.db.QueryRowContext(ctx, query, params...).
		Scan(&updated.Username, &updated.Password, &updated.FirstName, &updated.LastName,
			&updated.Email, &updated.PhotoURL, &updated.IsAdmin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, httperr.Conflict("email must be unique")
		}
		return nil, err
	}

	return updated, nil
}

// Delete removes a user and returns the deleted username, or "" when
// no row matched.
func (r *UserRepository) Delete(ctx context.Context, username string) (string, error) {
	query := `DELETE FROM users WHERE username=$1 RETURNING username`

	var deleted string
	err := r.db.QueryRowContext(ctx, query, username).Scan(&deleted)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return deleted, nil
}
