package roadmap

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidInput matches any InvalidInputError via errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a request the engine refuses to plan. It is the
// only error that crosses the engine boundary.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

// Upper bounds on a request. A plan longer than a year or a day with more
// than 24 hours is rejected before any allocation is sized from it.
const (
	MaxDays       = 365
	MaxStudyHours = 24
)

// Validate checks the request parameters shared by every entry point.
func Validate(subject string, totalDays int, studyHoursPerDay float64) error {
	if strings.TrimSpace(subject) == "" {
		return &InvalidInputError{Field: "subject", Reason: "must not be blank"}
	}
	if totalDays <= 0 {
		return &InvalidInputError{Field: "days", Reason: fmt.Sprintf("must be positive, got %d", totalDays)}
	}
	if totalDays > MaxDays {
		return &InvalidInputError{Field: "days", Reason: fmt.Sprintf("must be at most %d, got %d", MaxDays, totalDays)}
	}
	if !(studyHoursPerDay > 0) || math.IsInf(studyHoursPerDay, 1) {
		return &InvalidInputError{Field: "studyHours", Reason: fmt.Sprintf("must be a positive finite number, got %g", studyHoursPerDay)}
	}
	if studyHoursPerDay > MaxStudyHours {
		return &InvalidInputError{Field: "studyHours", Reason: fmt.Sprintf("must be at most %d, got %g", MaxStudyHours, studyHoursPerDay)}
	}
	return nil
}
