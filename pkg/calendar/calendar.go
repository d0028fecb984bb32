package calendar

import (
	"slices"
	"time"
)

// Event is anything scheduled on a day, typically a workshop session.
type Event struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	Seats int       `json:"seats,omitempty"`
}

// Day is one cell of a month grid.
type Day struct {
	Date    time.Time `json:"date"`
	InMonth bool      `json:"in_month"`
	Events  []Event   `json:"events"`
}

// Week is one row of a month grid, starting on the configured week start.
type Week [7]Day

// Grid is a month laid out in whole weeks.
type Grid struct {
	Year     int        `json:"year"`
	Month    time.Month `json:"month"`
	Title    string     `json:"title"`
	Weekdays []string   `json:"weekdays"`
	Weeks    []Week     `json:"weeks"`
}

// Month lays out month as whole weeks beginning on weekStart. Leading and
// trailing days from the neighbouring months are included with InMonth false,
// so a grid has between four and six weeks. Events are attached to the day of
// their start, in the month's location, sorted by start time.
func Month(year int, month time.Month, weekStart time.Weekday, loc *time.Location, events []Event) Grid {
	if loc == nil {
		loc = time.UTC
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	// Normalise overflowing months such as 13 into the next year.
	year, month = first.Year(), first.Month()

	offset := (int(first.Weekday()) - int(weekStart) + 7) % 7
	start := first.AddDate(0, 0, -offset)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	weeks := (offset + daysInMonth + 6) / 7

	byDay := make(map[string][]Event)
	for _, ev := range events {
		key := ev.Start.In(loc).Format(time.DateOnly)
		byDay[key] = append(byDay[key], ev)
	}
	for _, evs := range byDay {
		slices.SortStableFunc(evs, func(a, b Event) int { return a.Start.Compare(b.Start) })
	}

	g := Grid{
		Year:     year,
		Month:    month,
		Title:    MonthName(month) + " " + itoa(year),
		Weekdays: Weekdays(weekStart),
		Weeks:    make([]Week, weeks),
	}
	for w := range weeks {
		for d := range 7 {
			date := start.AddDate(0, 0, w*7+d)
			g.Weeks[w][d] = Day{
				Date:    date,
				InMonth: date.Month() == month,
				Events:  byDay[date.Format(time.DateOnly)],
			}
		}
	}
	return g
}

// Days returns the in-month days that have at least one event.
func (g Grid) Days() []Day {
	var out []Day
	for _, w := range g.Weeks {
		for _, d := range w {
			if d.InMonth && len(d.Events) > 0 {
				out = append(out, d)
			}
		}
	}
	return out
}
