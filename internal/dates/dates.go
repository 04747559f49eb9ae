// Package dates holds the calendar arithmetic shared by the reporting
// queries and the payment lifecycle. Stored date fields are zero-padded
// "YYYY-MM-DD" strings so that Firestore range filters on them behave like
// date comparisons; everything here works on time.Time and serializes at
// the edges.
package dates

import (
	"errors"
	"time"
)

const dayLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, want YYYY-MM-DD")

// Day serializes a time to the sortable storage form.
func Day(t time.Time) string {
	return t.Format(dayLayout)
}

func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// MonthRange returns the inclusive [first day, last day] of a calendar month
// as storage-form strings.
func MonthRange(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return Day(first), Day(last)
}

func CurrentMonth(now time.Time) (int, time.Month) {
	return now.Year(), now.Month()
}

// PreviousMonth wraps the year boundary: January rolls back to December of
// the prior year.
func PreviousMonth(now time.Time) (int, time.Month) {
	y, m := now.Year(), now.Month()
	if m == time.January {
		return y - 1, time.December
	}
	return y, m - 1
}

// EndOfPreviousMonth is the last instant counted by "members registered by
// the end of last month".
func EndOfPreviousMonth(now time.Time) time.Time {
	firstOfThis := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return firstOfThis.Add(-time.Nanosecond)
}

// AddMonths advances a date by whole calendar months using Go's AddDate
// normalization: a day past the end of the target month rolls forward
// (2024-01-31 plus one month is 2024-03-02). The renewal calculation pins
// this rule in its tests.
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}

// Window returns the inclusive [from, from+days] range in storage form.
func Window(from time.Time, days int) (string, string) {
	return Day(from), Day(from.AddDate(0, 0, days))
}
