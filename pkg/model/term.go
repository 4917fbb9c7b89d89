package model

import (
	"strconv"
	"time"
)

// Semester is the one-letter semester code used in term urlNames.
type Semester string

const (
	SemesterFall   Semester = "f"
	SemesterIAP    Semester = "i"
	SemesterSpring Semester = "s"
)

// Catalog returns the registrar's two-letter semester code. Unknown codes
// map to "".
func (s Semester) Catalog() string {
	switch s {
	case SemesterFall:
		return "FA"
	case SemesterIAP:
		return "JA"
	case SemesterSpring:
		return "SP"
	}
	return ""
}

// Full returns the display name of the semester.
func (s Semester) Full() string {
	switch s {
	case SemesterFall:
		return "Fall"
	case SemesterIAP:
		return "IAP"
	case SemesterSpring:
		return "Spring"
	}
	return ""
}

// FullCaps returns the display name in capitals.
func (s Semester) FullCaps() string {
	switch s {
	case SemesterFall:
		return "FALL"
	case SemesterIAP:
		return "IAP"
	case SemesterSpring:
		return "SPRING"
	}
	return ""
}

// TermConfig is one row of the term configuration file. Dates are ISO
// YYYY-MM-DD strings; empty strings are tolerated and parse to the zero time.
type TermConfig struct {
	URLName            string   `csv:"url_name"`
	StartDate          string   `csv:"start_date"`
	H1EndDate          string   `csv:"h1_end_date"`
	H2StartDate        string   `csv:"h2_start_date"`
	EndDate            string   `csv:"end_date"`
	MondayScheduleDate string   `csv:"monday_schedule_date"`
	HolidayDates       []string `csv:"-"`
}

// Term holds one academic term's calendar boundaries and exposes the
// slot-to-date projections. Immutable after construction.
type Term struct {
	Year     string
	Semester Semester

	Start   time.Time
	H1End   time.Time
	H2Start time.Time
	End     time.Time

	// MondaySchedule is a non-Monday date that follows the Monday
	// timetable. Zero when the term has none.
	MondaySchedule time.Time

	Holidays []time.Time
}

// NewTerm builds a Term from a configuration record. Malformed input is not
// rejected: bad urlNames leave empty code/year, bad date strings leave zero
// times, and the derived getters return garbage accordingly.
func NewTerm(cfg TermConfig) *Term {
	t := &Term{}
	if len(cfg.URLName) >= 1 {
		t.Semester = Semester(cfg.URLName[:1])
		t.Year = cfg.URLName[1:]
	}
	t.Start = parseDate(cfg.StartDate)
	t.H1End = parseDate(cfg.H1EndDate)
	t.H2Start = parseDate(cfg.H2StartDate)
	t.End = parseDate(cfg.EndDate)
	t.MondaySchedule = parseDate(cfg.MondayScheduleDate)
	for _, h := range cfg.HolidayDates {
		t.Holidays = append(t.Holidays, parseDate(h))
	}
	return t
}

func parseDate(s string) time.Time {
	d, _ := time.ParseInLocation("2006-01-02", s, time.Local)
	return d
}

// FullRealYear is the term's 4-digit calendar year.
func (t *Term) FullRealYear() string {
	return "20" + t.Year
}

// FullSchoolYear is the year the school year ends in. A fall term belongs to
// the following calendar year; spring and IAP use their own.
func (t *Term) FullSchoolYear() string {
	if t.Semester == SemesterFall {
		y, _ := strconv.Atoi(t.FullRealYear())
		return strconv.Itoa(y + 1)
	}
	return t.FullRealYear()
}

func (t *Term) SemesterCatalog() string { return t.Semester.Catalog() }

func (t *Term) SemesterFull() string { return t.Semester.Full() }

func (t *Term) SemesterFullCaps() string { return t.Semester.FullCaps() }

// CatalogName is the registrar's term identifier, e.g. "2023FA".
func (t *Term) CatalogName() string {
	return t.FullSchoolYear() + t.Semester.Catalog()
}

// NiceName is the human-readable term name, e.g. "Fall 2022".
func (t *Term) NiceName() string {
	return t.Semester.Full() + " " + t.FullRealYear()
}

// URLName is the compact round-trip token, e.g. "f22".
func (t *Term) URLName() string {
	return string(t.Semester) + t.Year
}

func (t *Term) String() string {
	return t.URLName()
}

// StartDateFor returns the first date on or after the term start (or the
// second-half start) that falls on the slot's weekday, at the slot's time.
func (t *Term) StartDateFor(slot Slot, secondHalf bool) time.Time {
	date := t.Start
	if secondHalf {
		date = t.H2Start
	}
	for i := 0; i < 7 && int(date.Weekday()) != slot.Weekday(); i++ {
		date = date.AddDate(0, 0, 1)
	}
	return slot.OnDate(date)
}

// EndDateFor returns the day after the last date on or before the term end
// (or the first-half end) that falls on the slot's weekday, at the slot's
// time. The extra day makes it an exclusive recurrence bound that still
// includes the final occurrence.
func (t *Term) EndDateFor(slot Slot, firstHalf bool) time.Time {
	date := t.End
	if firstHalf {
		date = t.H1End
	}
	for i := 0; i < 7 && int(date.Weekday()) != slot.Weekday(); i++ {
		date = date.AddDate(0, 0, -1)
	}
	return slot.OnDate(date.AddDate(0, 0, 1))
}

// ExDatesFor lists the holidays on the slot's weekday, projected onto the
// slot's time, for exclusion from a weekly recurrence. The result is never
// empty: calendar feeds expect at least one exclusion date, so a sentinel on
// 2000-01-01 is appended when no holiday matches.
func (t *Term) ExDatesFor(slot Slot) []time.Time {
	var ex []time.Time
	for _, h := range t.Holidays {
		if int(h.Weekday()) == slot.Weekday() {
			ex = append(ex, slot.OnDate(h))
		}
	}
	if len(ex) == 0 {
		ex = append(ex, slot.OnDate(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.Local)))
	}
	return ex
}

// RDateFor returns the Monday-schedule date projected onto the slot's time.
// Defined only for Monday slots of terms that have such a date.
func (t *Term) RDateFor(slot Slot) (time.Time, bool) {
	if slot.Weekday() != 1 || t.MondaySchedule.IsZero() {
		return time.Time{}, false
	}
	return slot.OnDate(t.MondaySchedule), true
}
