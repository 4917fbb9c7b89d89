package termio

import (
	"testing"

	"github.com/jophy-ye/hydrant/pkg/model"
	"github.com/stretchr/testify/assert"
)

func validTerm() *model.Term {
	return model.NewTerm(model.TermConfig{
		URLName:     "f22",
		StartDate:   "2022-09-07",
		H1EndDate:   "2022-10-28",
		H2StartDate: "2022-10-31",
		EndDate:     "2022-12-14",
	})
}

func TestValidateTermsOK(t *testing.T) {
	valid, msg := ValidateTerms([]*model.Term{validTerm()})
	assert.True(t, valid, msg)
	assert.Contains(t, msg, "[  OK]: Reference week check.")
	assert.Contains(t, msg, "[  OK]: Term boundary check.")
	assert.Contains(t, msg, "[  OK]: Term naming check.")
}

func TestValidateTermsBadBoundaries(t *testing.T) {
	term := validTerm()
	term.H1End, term.H2Start = term.H2Start, term.H1End
	valid, msg := ValidateTerms([]*model.Term{term})
	assert.False(t, valid)
	assert.Contains(t, msg, "[FAIL]: Term boundary check.")
	assert.Contains(t, msg, "f22")
}

func TestValidateTermsMissingDates(t *testing.T) {
	term := model.NewTerm(model.TermConfig{URLName: "f22"})
	valid, msg := ValidateTerms([]*model.Term{term})
	assert.False(t, valid)
	assert.Contains(t, msg, "missing or unparsable")
}

func TestValidateTermsBadName(t *testing.T) {
	term := model.NewTerm(model.TermConfig{
		URLName:     "x2",
		StartDate:   "2022-09-07",
		H1EndDate:   "2022-10-28",
		H2StartDate: "2022-10-31",
		EndDate:     "2022-12-14",
	})
	valid, msg := ValidateTerms([]*model.Term{term})
	assert.False(t, valid)
	assert.Contains(t, msg, "[FAIL]: Term naming check.")
	assert.Contains(t, msg, "unknown semester code")
	assert.Contains(t, msg, "malformed year")
}
