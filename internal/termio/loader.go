package termio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/jophy-ye/hydrant/pkg/model"
)

// LoadTerms reads and parses the term and holiday csv files. Holiday rows
// are merged into their term's configuration by url_name before the terms
// are built. Returns the terms, an error flag, and a report string.
func LoadTerms(termsPath string, holidaysPath string, delim rune) ([]*model.Term, bool, string) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})

	var errorExists bool = false
	var reportString string = ""

	termsFile, err := os.OpenFile(termsPath, os.O_RDWR, os.ModePerm)
	if err != nil {
		fmt.Println("Err00")
		errorExists = true
		reportString = reportString + "Failed to open " + termsPath + " file. Please make sure the file exists.\n"
	}
	defer termsFile.Close()

	_configs := []*model.TermConfig{}
	if err := gocsv.UnmarshalFile(termsFile, &_configs); err != nil {
		fmt.Println("Err01")
		errorExists = true
		reportString = reportString + "Failed to parse data from " + termsPath + " file. Please check the data integrity and format.\n"
	}

	holidaysFile, err := os.OpenFile(holidaysPath, os.O_RDWR, os.ModePerm)
	if err != nil {
		fmt.Println("Err00")
		errorExists = true
		reportString = reportString + "Failed to open " + holidaysPath + " file. Please make sure the file exists.\n"
	}
	defer holidaysFile.Close()

	_holidays := []*model.HolidayCSV{}
	if err := gocsv.UnmarshalFile(holidaysFile, &_holidays); err != nil {
		fmt.Println("Err01")
		errorExists = true
		reportString = reportString + "Failed to parse data from " + holidaysPath + " file. Please check the data integrity and format.\n"
	}

	if errorExists {
		return nil, true, reportString
	}

	// Combine holiday lines into their term's config
	mergeHolidays(_configs, _holidays)

	terms := []*model.Term{}
	for _, cfg := range _configs {
		terms = append(terms, model.NewTerm(*cfg))
	}

	return terms, false, reportString
}

// Combine multi-line holiday entries into the matching term config
func mergeHolidays(configs []*model.TermConfig, holidays []*model.HolidayCSV) {
	for _, h := range holidays {
		for _, cfg := range configs {
			if cfg.URLName == h.URLName {
				cfg.HolidayDates = append(cfg.HolidayDates, h.HolidayDate)
				break
			}
		}
	}
}

// FindTerm returns the term with the given urlName, or nil.
func FindTerm(terms []*model.Term, urlName string) *model.Term {
	for _, t := range terms {
		if t.URLName() == urlName {
			return t
		}
	}
	return nil
}
