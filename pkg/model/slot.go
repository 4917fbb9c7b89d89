package model

import (
	"slices"
	"time"
)

// Slot is one 30-minute weekday period on the Mon-Fri grid, encoded as an
// integer 0-149. The index alone determines weekday and time of day, so the
// value compares and hashes like the index and can be used as a map key.
type Slot int

const (
	// SlotsPerDay is the index stride between consecutive weekdays.
	SlotsPerDay = 30
	// NumWeekdays covers Monday through Friday.
	NumWeekdays = 5
	// NumSlots is the number of real slots on the grid.
	NumSlots = SlotsPerDay * NumWeekdays

	firstHour = 8
)

// Days holds the weekday labels, Monday first.
var Days = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

// Times holds the time-of-day labels in slot order. The last entry, 10:00 PM,
// is never a start slot; it is only reachable as an end boundary.
var Times = []string{
	"8:00 AM", "8:30 AM", "9:00 AM", "9:30 AM",
	"10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"12:00 PM", "12:30 PM", "1:00 PM", "1:30 PM",
	"2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM",
	"4:00 PM", "4:30 PM", "5:00 PM", "5:30 PM",
	"6:00 PM", "6:30 PM", "7:00 PM", "7:30 PM",
	"8:00 PM", "8:30 PM", "9:00 PM", "9:30 PM",
	"10:00 PM",
}

// refYear/refMonth anchor the reference week used for date-less display.
// 2001-01-01 is a Monday, so day-of-month n falls on weekday n.
const (
	refYear  = 2001
	refMonth = time.January
)

// FromSlotNumber returns the slot with the given index. Out-of-range indices
// are accepted; their derived labels simply don't exist.
func FromSlotNumber(n int) Slot {
	return Slot(n)
}

// FromStartDate converts a date on a 30-minute boundary within the supported
// window (Mon-Fri, 8:00-21:59) to its slot. Anything outside the window maps
// to an out-of-range index.
func FromStartDate(t time.Time) Slot {
	return Slot(SlotsPerDay*(int(t.Weekday())-1) + 2*(t.Hour()-firstHour) + t.Minute()/30)
}

// FromDayString composes a slot from a weekday label and a time label.
// An unmatched label contributes -1 and yields an invalid slot.
func FromDayString(day string, tm string) Slot {
	return FromSlotNumber(SlotsPerDay*slices.Index(Days, day) + slices.Index(Times, tm))
}

// AllSlots lists every real slot on the grid in index order.
func AllSlots() []Slot {
	slots := make([]Slot, NumSlots)
	for i := range slots {
		slots[i] = Slot(i)
	}
	return slots
}

// Add returns the slot n indices later. No wraparound; crossing either end
// of the grid produces an out-of-range slot.
func (s Slot) Add(n int) Slot {
	return FromSlotNumber(int(s) + n)
}

// Weekday returns 1 for Monday through 5 for Friday.
func (s Slot) Weekday() int {
	return int(s)/SlotsPerDay + 1
}

func (s Slot) daySlot() int {
	return int(s) % SlotsPerDay
}

// DayString returns the weekday label, or "" for an index off the grid.
func (s Slot) DayString() string {
	w := s.Weekday()
	if w < 1 || w > len(Days) {
		return ""
	}
	return Days[w-1]
}

// TimeString returns the time-of-day label, or "" for an unlabeled index.
func (s Slot) TimeString() string {
	k := s.daySlot()
	if k < 0 || k >= len(Times) {
		return ""
	}
	return Times[k]
}

// OnDate projects this slot's time of day onto the given date's year, month
// and day. The date is presumed to already fall on the matching weekday; no
// check is performed.
func (s Slot) OnDate(d time.Time) time.Time {
	k := s.daySlot()
	return time.Date(d.Year(), d.Month(), d.Day(), k/2+firstHour, k%2*30, 0, 0, d.Location())
}

// StartDate places the slot in the reference week for date-less display.
func (s Slot) StartDate() time.Time {
	return s.OnDate(time.Date(refYear, refMonth, s.Weekday(), 0, 0, 0, 0, time.Local))
}

// EndDate is the start of the following slot in the reference week.
func (s Slot) EndDate() time.Time {
	return s.Add(1).StartDate()
}
