package model

type HolidayCSV struct {
	URLName     string `csv:"url_name"`
	HolidayDate string `csv:"holiday_date"`
}
