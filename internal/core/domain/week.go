package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = time.DateOnly

// WeekWindow is the Monday to Sunday period a rate is fixed for.
//
// Number and Year follow ISO-8601: a week belongs to the year that contains
// its Thursday, so the week of Mon 2024-12-30 is week 1 of 2025. The
// get_week_boundaries SQL function applies the same rule.
type WeekWindow struct {
	Year   int       `json:"year"`
	Number int       `json:"weekNumber"`
	Start  time.Time `json:"weekStart"`
	End    time.Time `json:"weekEnd"`
}

// WeekOf returns the week window containing the calendar date of d, read in d's location.
func WeekOf(d time.Time) WeekWindow {
	day := DateOf(d)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start := day.AddDate(0, 0, -offset)
	year, number := start.AddDate(0, 0, 3).ISOWeek()
	return WeekWindow{
		Year:   year,
		Number: number,
		Start:  start,
		End:    start.AddDate(0, 0, 6),
	}
}

// Contains reports whether the calendar date of d falls inside the window.
func (w WeekWindow) Contains(d time.Time) bool {
	day := DateOf(d)
	return !day.Before(w.Start) && !day.After(w.End)
}

// Equal compares two windows on all four fields.
func (w WeekWindow) Equal(o WeekWindow) bool {
	return w.Year == o.Year && w.Number == o.Number && w.Start.Equal(o.Start) && w.End.Equal(o.End)
}

func (w WeekWindow) String() string {
	return fmt.Sprintf("%d-W%02d (%s..%s)", w.Year, w.Number, w.Start.Format(DateLayout), w.End.Format(DateLayout))
}

// DateOf truncates t to midnight UTC of its calendar date in t's own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}
