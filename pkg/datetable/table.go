package datetable

import (
	"fmt"
	"strings"
	"time"
)

// DateFormatISO is the date layout used everywhere in the table.
const DateFormatISO = "2006-01-02"

// ForwardDays is the size of the forward window (today inclusive).
const ForwardDays = 15

// Build returns the calendar grounding table for the given day:
// one "yesterday" entry tagged history, then today..today+14 in
// chronological order. The model looks relative date words up in this
// table instead of doing date arithmetic itself.
func Build(today time.Time) []Day {
	today = startOfDay(today)
	days := make([]Day, 0, ForwardDays+1)

	yesterday := today.AddDate(0, 0, -1)
	days = append(days, newDay(yesterday, []string{"history"}))

	// next_monday is the boundary between "this week" and "next week".
	// weekdayIndex: Monday=0..Sunday=6, so a Monday today puts the
	// boundary a full 7 days out.
	nextMonday := today.AddDate(0, 0, 7-weekdayIndex(today))

	for i := 0; i < ForwardDays; i++ {
		day := today.AddDate(0, 0, i)
		var tags []string

		switch i {
		case 0:
			tags = append(tags, "today")
		case 1:
			tags = append(tags, "tomorrow")
		case 2:
			tags = append(tags, "day-after-tomorrow")
		}

		weekday := strings.ToLower(day.Weekday().String())
		switch {
		case day.Before(nextMonday):
			tags = append(tags, "this-week", "this-"+weekday)
		case day.Before(nextMonday.AddDate(0, 0, 7)):
			tags = append(tags, "next-week", "next-"+weekday)
		default:
			tags = append(tags, "next-next-week")
		}

		tags = append(tags, fmt.Sprintf("day-of-month-%d", day.Day()))
		days = append(days, newDay(day, tags))
	}

	return days
}

// Render formats the table as one line per day for prompt embedding.
func Render(days []Day) string {
	var b strings.Builder
	for _, d := range days {
		fmt.Fprintf(&b, "%s %s [%s]\n", d.ISODate, d.Weekday, strings.Join(d.Tags, ", "))
	}
	return b.String()
}

func newDay(t time.Time, tags []string) Day {
	return Day{
		Date:    t,
		ISODate: t.Format(DateFormatISO),
		Weekday: t.Weekday().String(),
		Tags:    tags,
	}
}

// weekdayIndex maps Monday=0..Sunday=6.
func weekdayIndex(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 { // Sunday
		return 6
	}
	return wd - 1
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
