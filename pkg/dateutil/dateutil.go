// Package dateutil holds the pure calendar math behind the month view:
// Monday-start day grids, per-day post bucketing and month arithmetic.
// Everything here is stateless and safe for concurrent use.
package dateutil

import (
	"time"

	"github.com/maheshrc27/sheetcal/internal/models"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	TimeLayout  = "15:04"
)

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func ParseMonth(s string) (time.Time, error) {
	return time.Parse(MonthLayout, s)
}

func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// MonthGrid returns the day sequence covering the month of ref: from the
// Monday of the week containing the 1st through the Sunday of the week
// containing the last day. The result is always 4 to 6 whole weeks.
func MonthGrid(ref time.Time) []time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	last := first.AddDate(0, 1, -1)

	start := startOfWeek(first)
	end := endOfWeek(last)

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// startOfWeek returns the Monday of the week containing t.
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

// endOfWeek returns the Sunday of the week containing t.
func endOfWeek(t time.Time) time.Time {
	return startOfWeek(t).AddDate(0, 0, 6)
}

// Bucket groups posts onto the grid days by their YYYY-MM-DD date key and
// flags each day relative to the reference month and the current wall clock.
func Bucket(ref time.Time, days []time.Time, posts []*models.Post) []models.CalendarDay {
	return BucketAt(ref, days, posts, time.Now())
}

// BucketAt is Bucket with an explicit "now" instant.
func BucketAt(ref time.Time, days []time.Time, posts []*models.Post, now time.Time) []models.CalendarDay {
	today := FormatDate(now)

	out := make([]models.CalendarDay, 0, len(days))
	for _, day := range days {
		key := FormatDate(day)

		var dayPosts []*models.Post
		for _, p := range posts {
			if p.Date == key {
				dayPosts = append(dayPosts, p)
			}
		}

		out = append(out, models.CalendarDay{
			Date:           day,
			IsCurrentMonth: day.Month() == ref.Month() && day.Year() == ref.Year(),
			IsToday:        key == today,
			Posts:          dayPosts,
		})
	}
	return out
}

// ShiftMonth moves t by delta whole months, clamping the day of month to the
// length of the target month (Jan 31 shifted by +1 lands on the last day of
// February rather than spilling into March).
func ShiftMonth(t time.Time, delta int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, delta, 0)

	day := t.Day()
	if max := daysInMonth(first); day > max {
		day = max
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, t.Location())
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, -1).Day()
}
