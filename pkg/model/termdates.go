package model

// TermDatesCSVRow is one exported line of per-slot recurrence dates.
type TermDatesCSVRow struct {
	Term       string `csv:"term"`
	SlotNumber int    `csv:"slot"`
	Day        string `csv:"day"`
	Time       string `csv:"time"`
	FirstClass string `csv:"first_class"`
	RecurEnd   string `csv:"recurrence_end"`
	ExDates    string `csv:"excluded_dates"`
	ExtraDate  string `csv:"extra_date"`
}
