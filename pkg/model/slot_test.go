package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReferenceWeekIsMonday(t *testing.T) {
	anchor := time.Date(2001, time.January, 1, 0, 0, 0, 0, time.Local)
	assert.Equal(t, time.Monday, anchor.Weekday())
}

func TestWeekdayFromIndex(t *testing.T) {
	for i := 0; i < NumSlots; i++ {
		assert.Equal(t, i/30+1, FromSlotNumber(i).Weekday(), "slot %d", i)
	}
}

func TestFromSlotNumberIsCanonical(t *testing.T) {
	a := FromSlotNumber(42)
	b := FromSlotNumber(42)
	assert.Equal(t, a, b)

	// usable as a map key by value
	seen := map[Slot]int{}
	seen[a]++
	seen[b]++
	assert.Equal(t, 2, seen[FromSlotNumber(42)])
}

func TestDayStringRoundTrip(t *testing.T) {
	for _, day := range Days {
		for _, tm := range Times {
			s := FromDayString(day, tm)
			assert.Equal(t, day, s.DayString())
			assert.Equal(t, tm, s.TimeString())
		}
	}
}

func TestFromDayStringUnknownLabel(t *testing.T) {
	assert.Less(t, int(FromDayString("Sun", "8:00 AM")), 0)
	assert.Less(t, int(FromDayString("Mon", "7:00 AM")), 0)
}

func TestConsecutiveSlotsAreContiguous(t *testing.T) {
	for i := 0; i < NumSlots-1; i++ {
		s := FromSlotNumber(i)
		assert.Equal(t, s.Add(1).StartDate(), s.EndDate(), "slot %d", i)
	}
	// the very last boundary projects past the grid but is still a
	// well-defined instant
	last := FromSlotNumber(NumSlots - 1)
	assert.Equal(t, FromSlotNumber(NumSlots).StartDate(), last.EndDate())
}

func TestStartDateReferenceWeek(t *testing.T) {
	s := FromDayString("Mon", "8:00 AM")
	assert.Equal(t, time.Date(2001, time.January, 1, 8, 0, 0, 0, time.Local), s.StartDate())

	s = FromDayString("Fri", "9:30 PM")
	assert.Equal(t, time.Date(2001, time.January, 5, 21, 30, 0, 0, time.Local), s.StartDate())
	assert.Equal(t, time.Date(2001, time.January, 5, 22, 0, 0, 0, time.Local), s.EndDate())
}

func TestOnDateUsesCalendarDayOnly(t *testing.T) {
	s := FromDayString("Mon", "9:00 AM")
	monday := time.Date(2022, time.September, 12, 0, 0, 0, 0, time.Local)
	assert.Equal(t, time.Date(2022, time.September, 12, 9, 0, 0, 0, time.Local), s.OnDate(monday))
}

func TestFromStartDate(t *testing.T) {
	cases := []struct {
		date time.Time
		want Slot
	}{
		{time.Date(2022, time.September, 12, 9, 0, 0, 0, time.Local), 2},     // Mon 9:00 AM
		{time.Date(2022, time.September, 13, 8, 0, 0, 0, time.Local), 30},    // Tue 8:00 AM
		{time.Date(2022, time.September, 16, 21, 30, 0, 0, time.Local), 147}, // Fri 9:30 PM
		{time.Date(2022, time.September, 16, 21, 59, 0, 0, time.Local), 147}, // floors to the half hour
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FromStartDate(c.date), "%s", c.date)
	}
}

func TestFromStartDateRoundTrip(t *testing.T) {
	for _, s := range AllSlots() {
		assert.Equal(t, s, FromStartDate(s.StartDate()))
	}
}

func TestLabelsOffTheGrid(t *testing.T) {
	assert.Equal(t, "", FromSlotNumber(150).DayString())
	assert.Equal(t, "", FromSlotNumber(29).TimeString()) // past 10:00 PM
	assert.Equal(t, "Mon", FromSlotNumber(29).DayString())
	assert.Equal(t, "10:00 PM", FromSlotNumber(28).TimeString()) // end boundary label
}

func TestAddDoesNotWrap(t *testing.T) {
	assert.Equal(t, FromSlotNumber(150), FromSlotNumber(149).Add(1))
	assert.Equal(t, FromSlotNumber(-2), FromSlotNumber(0).Add(-2))
}
