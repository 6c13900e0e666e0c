package repository

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFields is returned by BuildPartialUpdate when there is nothing
// to set.
var ErrNoFields = errors.New("no fields to update")

// CompanyFilter holds the optional company search filters. A nil
// numeric filter contributes no clause; a pointer to zero is a valid
// boundary.
type CompanyFilter struct {
	Search       string
	MinEmployees *int
	MaxEmployees *int
}

// JobFilter holds the optional job search filters. MinEquity keeps the
// comparison direction the board has always used: it is an equity
// ceiling, matching jobs whose equity is strictly below it.
type JobFilter struct {
	Search    string
	MinSalary *float64
	MinEquity *float64
}

// BuildCompanySearch turns a filter into a parameterized SELECT over
// companies. Clauses are appended in a fixed order (search, min, max)
// and the params slice stays in lockstep with the placeholders, so
// $N always equals len(params) at the time the clause is added, plus
// one.
func BuildCompanySearch(f CompanyFilter) (string, []any) {
	var clauses []string
	var params []any

	if f.Search != "" {
		clauses = append(clauses, fmt.Sprintf("name ILIKE $%d", len(params)+1))
		params = append(params, "%"+f.Search+"%")
	}
	if f.MinEmployees != nil {
		clauses = append(clauses, fmt.Sprintf("num_employees > $%d", len(params)+1))
		params = append(params, *f.MinEmployees)
	}
	if f.MaxEmployees != nil {
		clauses = append(clauses, fmt.Sprintf("num_employees < $%d", len(params)+1))
		params = append(params, *f.MaxEmployees)
	}

	query := "SELECT handle, name FROM companies"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	return query, params
}

// BuildJobSearch turns a filter into a parameterized SELECT over jobs.
// The ordering suffix is always present, filters or not.
func BuildJobSearch(f JobFilter) (string, []any) {
	var clauses []string
	var params []any

	if f.Search != "" {
		clauses = append(clauses, fmt.Sprintf("title ILIKE $%d", len(params)+1))
		params = append(params, "%"+f.Search+"%")
	}
	if f.MinSalary != nil {
		clauses = append(clauses, fmt.Sprintf("salary > $%d", len(params)+1))
		params = append(params, *f.MinSalary)
	}
	if f.MinEquity != nil {
		clauses = append(clauses, fmt.Sprintf("equity < $%d", len(params)+1))
		params = append(params, *f.MinEquity)
	}

	query := "SELECT id, title, date_posted, salary, equity FROM jobs"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY date_posted DESC, company_handle, title"

	return query, params
}

// UpdateField is one column to change in a partial update. Fields are
// a slice, not a map, so the SET clause and the params keep the
// caller's order.
type UpdateField struct {
	Column string
	Value  any
}

// BuildPartialUpdate builds an UPDATE statement setting exactly the
// given fields, keyed by keyCol=keyVal, returning the whole updated
// row. Params are the field values in order with the key value last.
func BuildPartialUpdate(table string, fields []UpdateField, keyCol string, keyVal any) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, ErrNoFields
	}

	sets := make([]string, 0, len(fields))
	params := make([]any, 0, len(fields)+1)
	for i, f := range fields {
		sets = append(sets, fmt.Sprintf("%s=$%d", f.Column, i+1))
		params = append(params, f.Value)
	}
	params = append(params, keyVal)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s=$%d RETURNING *",
		table, strings.Join(sets, ", "), keyCol, len(params))

	return query, params, nil
}
