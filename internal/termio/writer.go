package termio

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/jophy-ye/hydrant/pkg/model"
)

const dateLayout = "2006-01-02 15:04"

// ExportTermDates formats the per-slot recurrence dates of a term into
// TermDatesCSVRow structs and writes them to the CSV file specified by the
// given path.
func ExportTermDates(term *model.Term, slots []model.Slot, path string) string {
	nice := formatTermDates(term, slots)
	// Remove file if exists
	_, err := os.Stat(path)
	if err == nil {
		os.Remove(path)
	}

	// Open new file
	out, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, os.ModePerm)
	if err != nil {
		fmt.Println("Err02")
		panic(err)
	}

	// Write to file
	err = gocsv.MarshalFile(&nice, out)
	defer out.Close()
	if err != nil {
		fmt.Println("Err03")
		panic(err)
	}

	return path
}

// ExportTermDatesString formats the per-slot recurrence dates of a term and
// returns them as a CSV string.
func ExportTermDatesString(term *model.Term, slots []model.Slot) string {
	nice := formatTermDates(term, slots)

	str, err := gocsv.MarshalString(&nice)
	if err != nil {
		fmt.Println("Err03")
		panic(err)
	}

	return str
}

// PrintTermDates prints the weekly recurrence dates of a term grouped by
// weekday.
func PrintTermDates(term *model.Term, slots []model.Slot) {
	rows := formatTermDates(term, slots)
	var lastDay string
	for _, r := range rows {
		if r.Day != lastDay {
			lastDay = r.Day
			fmt.Printf("\n%s %s %s\n", strings.Repeat("-", 14), r.Day, strings.Repeat("-", 14))
		}
		fmt.Printf("%-9s %s -> %s\n", r.Time, r.FirstClass, r.RecurEnd)
	}
	fmt.Printf("Printed rows: %d\n", len(rows))
}

func formatTermDates(term *model.Term, slots []model.Slot) []*model.TermDatesCSVRow {
	var formatted []*model.TermDatesCSVRow
	for _, s := range slots {
		ex := []string{}
		for _, d := range term.ExDatesFor(s) {
			ex = append(ex, d.Format(dateLayout))
		}
		var extra string
		if d, ok := term.RDateFor(s); ok {
			extra = d.Format(dateLayout)
		}
		formatted = append(formatted, &model.TermDatesCSVRow{
			Term:       term.URLName(),
			SlotNumber: int(s),
			Day:        s.DayString(),
			Time:       s.TimeString(),
			FirstClass: term.StartDateFor(s, false).Format(dateLayout),
			RecurEnd:   term.EndDateFor(s, false).Format(dateLayout),
			ExDates:    strings.Join(ex, "|"),
			ExtraDate:  extra,
		})
	}
	return formatted
}
