package repository

import (
	"errors"

	"github.com/lib/pq"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	return isPqCode(err, uniqueViolation)
}

func isForeignKeyViolation(err error) bool {
	return isPqCode(err, foreignKeyViolation)
}

func isPqCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
