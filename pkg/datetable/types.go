package datetable

import "time"

// Day is one row of the calendar grounding table handed to the model.
type Day struct {
	Date    time.Time
	ISODate string // YYYY-MM-DD
	Weekday string // English weekday name, e.g. "Monday"
	Tags    []string
}

// HasTag reports whether the day carries the given tag.
func (d Day) HasTag(tag string) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
