package domain

import "time"

// TimeSlot is a (date, time label) pair representing an appointment window
type TimeSlot struct {
	Date  time.Time // date only, UTC midnight
	Label string    // e.g. "09:00 AM"
}

// NewTimeSlot creates a slot, truncating the date to the calendar day
func NewTimeSlot(date time.Time, label string) TimeSlot {
	return TimeSlot{Date: DateOnly(date), Label: label}
}

// Equal returns true if both the calendar date and the label match
func (s TimeSlot) Equal(other TimeSlot) bool {
	return DateOnly(s.Date).Equal(DateOnly(other.Date)) && s.Label == other.Label
}

// DateString returns the date in YYYY-MM-DD format
func (s TimeSlot) DateString() string {
	return s.Date.Format(DateFormat)
}

// DateOnly returns UTC midnight of the calendar date of t as seen in t's location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date into a date-only value
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, value, time.UTC)
}
