package termio

import (
	"fmt"
	"time"

	"github.com/jophy-ye/hydrant/pkg/model"
)

// ValidateTerms checks term configurations for boundary and naming problems.
// Returns false and a message for invalid configurations. Terms are usable
// either way; the date projections tolerate garbage input.
func ValidateTerms(terms []*model.Term) (bool, string) {
	var message string
	var valid bool = true
	var hasBoundaryError bool = false
	var hasNameError bool = false

	// The reference week anchor must be a Monday or every date-less
	// projection is shifted.
	anchorOK := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.Local).Weekday() == time.Monday
	if !anchorOK {
		valid = false
	}

	for _, t := range terms {
		if t.Start.IsZero() || t.H1End.IsZero() || t.H2Start.IsZero() || t.End.IsZero() {
			valid = false
			hasBoundaryError = true
			message += fmt.Sprintf("- Term %s has missing or unparsable calendar dates\n", t.URLName())
		} else if t.Start.After(t.H1End) || !t.H1End.Before(t.H2Start) || t.H2Start.After(t.End) {
			valid = false
			hasBoundaryError = true
			message += fmt.Sprintf("- Term %s violates start <= h1End < h2Start <= end\n", t.URLName())
		}

		if t.Semester.Catalog() == "" {
			valid = false
			hasNameError = true
			message += fmt.Sprintf("- Term %s has an unknown semester code %q\n", t.URLName(), string(t.Semester))
		}
		if !isTwoDigitYear(t.Year) {
			valid = false
			hasNameError = true
			message += fmt.Sprintf("- Term %s has a malformed year %q\n", t.URLName(), t.Year)
		}
	}

	if hasNameError {
		message = "[FAIL]: Term naming check.\n" + message
	} else {
		message = "[  OK]: Term naming check.\n" + message
	}
	if hasBoundaryError {
		message = "[FAIL]: Term boundary check.\n" + message
	} else {
		message = "[  OK]: Term boundary check.\n" + message
	}
	if !anchorOK {
		message = "[FAIL]: Reference week check.\n" + message
	} else {
		message = "[  OK]: Reference week check.\n" + message
	}

	return valid, message
}

func isTwoDigitYear(y string) bool {
	if len(y) != 2 {
		return false
	}
	for _, c := range y {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
