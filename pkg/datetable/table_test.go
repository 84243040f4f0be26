package datetable

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func mustDate(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := time.Parse(DateFormatISO, iso)
	if err != nil {
		t.Fatalf("bad test date %q: %v", iso, err)
	}
	return d
}

func TestBuild_Shape(t *testing.T) {
	days := Build(mustDate(t, "2025-06-10")) // a Tuesday

	if len(days) != 16 {
		t.Fatalf("expected 16 entries, got %d", len(days))
	}

	if days[0].ISODate != "2025-06-09" {
		t.Errorf("entry 0 should be yesterday, got %s", days[0].ISODate)
	}
	if !days[0].HasTag("history") {
		t.Errorf("yesterday entry should be tagged history, got %v", days[0].Tags)
	}

	relatives := []string{"today", "tomorrow", "day-after-tomorrow"}
	for i, tag := range relatives {
		if !days[i+1].HasTag(tag) {
			t.Errorf("entry %d should be tagged %q, got %v", i+1, tag, days[i+1].Tags)
		}
	}

	// Chronological ascending
	for i := 1; i < len(days); i++ {
		if !days[i-1].Date.Before(days[i].Date) {
			t.Errorf("entries out of order at %d: %s >= %s", i, days[i-1].ISODate, days[i].ISODate)
		}
	}
}

func TestBuild_WeekBoundaries(t *testing.T) {
	// Today is Tuesday 2025-06-10, so next Monday is 2025-06-16.
	days := Build(mustDate(t, "2025-06-10"))

	byDate := make(map[string]Day, len(days))
	for _, d := range days {
		byDate[d.ISODate] = d
	}

	cases := []struct {
		date string
		tag  string
	}{
		{"2025-06-10", "this-week"},
		{"2025-06-10", "this-tuesday"},
		{"2025-06-15", "this-week"}, // Sunday still this week
		{"2025-06-16", "next-week"}, // next Monday
		{"2025-06-16", "next-monday"},
		{"2025-06-22", "next-week"},
		{"2025-06-23", "next-next-week"},
	}
	for _, tc := range cases {
		day, ok := byDate[tc.date]
		if !ok {
			t.Fatalf("date %s missing from table", tc.date)
		}
		if !day.HasTag(tc.tag) {
			t.Errorf("%s should be tagged %q, got %v", tc.date, tc.tag, day.Tags)
		}
	}
}

func TestBuild_MondayBoundaryIsSevenDaysOut(t *testing.T) {
	// When today is itself Monday the whole current week is "this week".
	days := Build(mustDate(t, "2025-06-09")) // a Monday

	byDate := make(map[string]Day, len(days))
	for _, d := range days {
		byDate[d.ISODate] = d
	}

	if !byDate["2025-06-15"].HasTag("this-week") {
		t.Errorf("Sunday of the current week should be this-week, got %v", byDate["2025-06-15"].Tags)
	}
	if !byDate["2025-06-16"].HasTag("next-week") {
		t.Errorf("following Monday should be next-week, got %v", byDate["2025-06-16"].Tags)
	}
}

func TestBuild_DayOfMonthTags(t *testing.T) {
	days := Build(mustDate(t, "2025-12-28")) // window crosses into January

	for _, d := range days[1:] {
		want := fmt.Sprintf("day-of-month-%d", d.Date.Day())
		if !d.HasTag(want) {
			t.Errorf("%s missing %q tag: %v", d.ISODate, want, d.Tags)
		}
	}
}

func TestRender(t *testing.T) {
	out := Render(Build(mustDate(t, "2025-06-10")))

	if !strings.Contains(out, "2025-06-10 Tuesday") {
		t.Errorf("rendered table should contain today's row:\n%s", out)
	}
	if !strings.Contains(out, "[history]") {
		t.Errorf("rendered table should contain history row:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines != 16 {
		t.Errorf("expected 16 rendered lines, got %d", lines)
	}
}
