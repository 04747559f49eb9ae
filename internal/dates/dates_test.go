package dates

import (
	"sort"
	"testing"
	"time"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		start string
		end   string
	}{
		{2024, time.January, "2024-01-01", "2024-01-31"},
		{2024, time.February, "2024-02-01", "2024-02-29"},
		{2023, time.February, "2023-02-01", "2023-02-28"},
		{2024, time.April, "2024-04-01", "2024-04-30"},
		{2024, time.December, "2024-12-01", "2024-12-31"},
		{2024, time.September, "2024-09-01", "2024-09-30"},
	}

	for _, tt := range tests {
		start, end := MonthRange(tt.year, tt.month)
		if start != tt.start || end != tt.end {
			t.Errorf("MonthRange(%d, %v) = (%q, %q), want (%q, %q)",
				tt.year, tt.month, start, end, tt.start, tt.end)
		}
	}
}

// Storage-form dates must be zero-padded so that lexicographic order equals
// chronological order. Range filters on Firestore string fields depend on it.
func TestDaySortsLexicographically(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 9, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
	}

	strs := make([]string, len(times))
	for i, tm := range times {
		strs[i] = Day(tm)
		if len(strs[i]) != 10 {
			t.Fatalf("Day(%v) = %q, not zero-padded", tm, strs[i])
		}
	}

	sort.Strings(strs)
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	for i := range times {
		if strs[i] != Day(times[i]) {
			t.Fatalf("lexicographic order diverges from chronological at %d: %q vs %q",
				i, strs[i], Day(times[i]))
		}
	}
}

func TestPreviousMonthWrapsYear(t *testing.T) {
	y, m := PreviousMonth(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC))
	if y != 2023 || m != time.December {
		t.Errorf("PreviousMonth(2024-01) = (%d, %v), want (2023, December)", y, m)
	}

	y, m = PreviousMonth(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC))
	if y != 2024 || m != time.June {
		t.Errorf("PreviousMonth(2024-07) = (%d, %v), want (2024, June)", y, m)
	}
}

func TestEndOfPreviousMonth(t *testing.T) {
	now := time.Date(2024, time.March, 10, 14, 30, 0, 0, time.UTC)
	end := EndOfPreviousMonth(now)
	if Day(end) != "2024-02-29" {
		t.Errorf("EndOfPreviousMonth(2024-03-10) day = %q, want 2024-02-29", Day(end))
	}

	now = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := Day(EndOfPreviousMonth(now)); got != "2023-12-31" {
		t.Errorf("EndOfPreviousMonth(2024-01-01) day = %q, want 2023-12-31", got)
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		date   string
		months int
		want   string
	}{
		{"2024-01-15", 1, "2024-02-15"},
		{"2024-01-15", 12, "2025-01-15"},
		{"2024-01-15", 3, "2024-04-15"},
		// overflow days roll forward, the documented normalization rule
		{"2024-01-31", 1, "2024-03-02"},
		{"2023-01-31", 1, "2023-03-03"},
		{"2024-03-31", 1, "2024-05-01"},
		{"2024-11-15", 2, "2025-01-15"},
	}

	for _, tt := range tests {
		in, err := ParseDay(tt.date)
		if err != nil {
			t.Fatalf("ParseDay(%q): %v", tt.date, err)
		}
		if got := Day(AddMonths(in, tt.months)); got != tt.want {
			t.Errorf("AddMonths(%s, %d) = %s, want %s", tt.date, tt.months, got, tt.want)
		}
	}
}

func TestParseDayRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "2024-1-5", "15/01/2024", "2024-13-01", "yesterday"} {
		if _, err := ParseDay(s); err == nil {
			t.Errorf("ParseDay(%q) accepted, want error", s)
		}
	}
}

func TestWindow(t *testing.T) {
	from := time.Date(2024, time.June, 28, 0, 0, 0, 0, time.UTC)
	start, end := Window(from, 7)
	if start != "2024-06-28" || end != "2024-07-05" {
		t.Errorf("Window = (%q, %q), want (2024-06-28, 2024-07-05)", start, end)
	}
}
