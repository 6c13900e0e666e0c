package migrations

import (
	"database/sql"
	"time"
)

var tables = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		handle TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		num_employees INTEGER NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		logo_url TEXT NOT NULL DEFAULT ''
	);`,
	`CREATE TABLE IF NOT EXISTS jobs (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		salary FLOAT NOT NULL DEFAULT 0,
		equity FLOAT NOT NULL DEFAULT 0 CHECK (equity <= 1),
		company_handle TEXT NOT NULL REFERENCES companies (handle),
		date_posted TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		password TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL UNIQUE,
		photo_url TEXT NOT NULL DEFAULT '',
		is_admin BOOLEAN NOT NULL DEFAULT FALSE
	);`,
}

// AutoMigrate creates the board's tables if they do not exist,
// retrying each statement while the database comes up.
func AutoMigrate(retries int, db *sql.DB) error {
	for _, query := range tables {
		_, err := db.Exec(query)
		for i := 0; err != nil && i < retries; i++ {
			time.Sleep(1 * time.Second)
			_, err = db.Exec(query)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
