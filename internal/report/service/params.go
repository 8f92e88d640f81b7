package service

import (
	"regexp"
	"time"

	"github.com/fieldtrack/fieldtrack-backend/pkg/errors"
)

// dateLiteral enforces the literal YYYY-MM-DD shape. Strings that would
// otherwise parse as a date ("2024-1-01", "2024/01/01") are rejected here
// before any calendar validation.
var dateLiteral = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ReportParams is the validated input of a daily summary request
type ReportParams struct {
	Date           string
	EmployeeFilter *string
}

// ValidateParams validates the date and optional employee filter before any
// data access. The employee filter is passed through without an existence
// check: an unknown employee yields an empty breakdown, not an error.
func ValidateParams(date, employeeID string) (ReportParams, error) {
	if date == "" {
		return ReportParams{}, errors.MissingParameter("date")
	}

	if !dateLiteral.MatchString(date) {
		return ReportParams{}, errors.MalformedDate()
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return ReportParams{}, errors.InvalidDate()
	}

	params := ReportParams{Date: date}
	if employeeID != "" {
		params.EmployeeFilter = &employeeID
	}

	return params, nil
}
