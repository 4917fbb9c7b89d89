package main

import (
	"fmt"
	"time"

	"github.com/jophy-ye/hydrant/internal/termio"
	"github.com/jophy-ye/hydrant/pkg/model"
)

// Program parameters
const (
	TermsFile    = "./res/terms.csv"
	HolidaysFile = "./res/holidays.csv"
	ExportFile   = "term-dates.csv"
	ActiveTerm   = "f22"
)

func main() {
	terms, failed, report := termio.LoadTerms(TermsFile, HolidaysFile, ';')
	if failed {
		fmt.Println(report)
		return
	}

	valid, msg := termio.ValidateTerms(terms)
	if !valid {
		fmt.Println("Invalid term configuration:")
	} else {
		fmt.Println("Passed all tests")
	}
	fmt.Println(msg)

	term := termio.FindTerm(terms, ActiveTerm)
	if term == nil {
		fmt.Printf("No such term: %s\n", ActiveTerm)
		return
	}

	start := time.Now().UnixNano()
	termio.ExportTermDates(term, model.AllSlots(), ExportFile)
	end := time.Now().UnixNano()

	termio.PrintTermDates(term, model.AllSlots())
	fmt.Printf("Term: %s (%s)\n", term.NiceName(), term.CatalogName())
	fmt.Printf("Timer: %f ms\n", float64(end-start)/1000000.0)
}
