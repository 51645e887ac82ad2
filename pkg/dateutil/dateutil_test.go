package dateutil

import (
	"testing"
	"time"

	"github.com/maheshrc27/sheetcal/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantLen   int
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "five week month",
			ref:       date(2024, time.March, 15),
			wantLen:   35,
			wantStart: date(2024, time.February, 26),
			wantEnd:   date(2024, time.March, 31),
		},
		{
			name:      "exact four weeks",
			ref:       date(2021, time.February, 1),
			wantLen:   28,
			wantStart: date(2021, time.February, 1),
			wantEnd:   date(2021, time.February, 28),
		},
		{
			name:      "six week month",
			ref:       date(2026, time.March, 10),
			wantLen:   42,
			wantStart: date(2026, time.February, 23),
			wantEnd:   date(2026, time.April, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := MonthGrid(tt.ref)

			require.Len(t, days, tt.wantLen)
			assert.Zero(t, len(days)%7)
			assert.Equal(t, time.Monday, days[0].Weekday())
			assert.Equal(t, time.Sunday, days[len(days)-1].Weekday())
			assert.Equal(t, tt.wantStart, days[0])
			assert.Equal(t, tt.wantEnd, days[len(days)-1])

			// consecutive days, every day of the reference month exactly once
			inMonth := 0
			for i, d := range days {
				if i > 0 {
					assert.Equal(t, days[i-1].AddDate(0, 0, 1), d)
				}
				if d.Month() == tt.ref.Month() && d.Year() == tt.ref.Year() {
					inMonth++
				}
			}
			assert.Equal(t, daysInMonth(tt.ref), inMonth)
		})
	}
}

func TestBucketAt(t *testing.T) {
	ref := date(2024, time.March, 1)
	now := date(2024, time.March, 15)

	posts := []*models.Post{
		{ID: "A", Date: "2024-03-01"},
		{ID: "B", Date: "2024-03-01"},
		{ID: "C", Date: "2024-03-15"},
	}

	days := BucketAt(ref, MonthGrid(ref), posts, now)

	byDate := make(map[string]models.CalendarDay, len(days))
	for _, d := range days {
		byDate[FormatDate(d.Date)] = d
	}

	require.Len(t, byDate["2024-03-01"].Posts, 2)
	assert.Equal(t, "A", byDate["2024-03-01"].Posts[0].ID)
	assert.Equal(t, "B", byDate["2024-03-01"].Posts[1].ID)
	require.Len(t, byDate["2024-03-15"].Posts, 1)
	assert.Equal(t, "C", byDate["2024-03-15"].Posts[0].ID)

	assert.True(t, byDate["2024-03-15"].IsToday)
	assert.False(t, byDate["2024-03-01"].IsToday)
	assert.True(t, byDate["2024-03-01"].IsCurrentMonth)
	assert.False(t, byDate["2024-02-26"].IsCurrentMonth)

	// no post lost, none duplicated
	seen := make(map[string]int)
	for _, d := range days {
		for _, p := range d.Posts {
			seen[p.ID]++
		}
	}
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1}, seen)
}

func TestShiftMonth(t *testing.T) {
	tests := []struct {
		name  string
		in    time.Time
		delta int
		want  time.Time
	}{
		{"forward", date(2024, time.May, 15), 1, date(2024, time.June, 15)},
		{"backward", date(2024, time.May, 15), -1, date(2024, time.April, 15)},
		{"zero", date(2024, time.May, 15), 0, date(2024, time.May, 15)},
		{"clamp to leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamp to short february", date(2023, time.January, 31), 1, date(2023, time.February, 28)},
		{"clamp going backward", date(2024, time.March, 31), -1, date(2024, time.February, 29)},
		{"across year boundary", date(2024, time.December, 20), 1, date(2025, time.January, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShiftMonth(tt.in, tt.delta))
		})
	}
}
