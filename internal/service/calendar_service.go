package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/maheshrc27/sheetcal/internal/models"
	"github.com/maheshrc27/sheetcal/internal/transfer"
	"github.com/maheshrc27/sheetcal/pkg/dateutil"
)

// MaxVisiblePostsPerDay is the display cutoff for a calendar cell. Days
// carry all their posts regardless; Overflow counts the ones past the
// cutoff.
const MaxVisiblePostsPerDay = 3

type CalendarService interface {
	MonthView(ctx context.Context, brandSlug, month string, filter transfer.PostFilter) (*transfer.MonthView, error)
	Reschedule(ctx context.Context, brandSlug, postID, date string) (*models.Post, error)
}

type calendarService struct {
	ps PostService
}

func NewCalendarService(ps PostService) CalendarService {
	return &calendarService{ps: ps}
}

// MonthView assembles the day-by-day view model: the brand's posts are
// filtered, laid onto the Monday-start grid of the requested month and
// decorated with the display cutoff. month is YYYY-MM and defaults to the
// current month.
func (s *calendarService) MonthView(ctx context.Context, brandSlug, month string, filter transfer.PostFilter) (*transfer.MonthView, error) {
	ref := time.Now()
	if month != "" {
		parsed, err := dateutil.ParseMonth(month)
		if err != nil {
			slog.Info(err.Error())
			return nil, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidInput)
		}
		ref = parsed
	}

	posts, err := s.ps.List(ctx, brandSlug)
	if err != nil {
		return nil, err
	}

	days := dateutil.MonthGrid(ref)
	buckets := dateutil.Bucket(ref, days, filterPosts(posts, filter))

	view := &transfer.MonthView{
		Month:     ref.Format(dateutil.MonthLayout),
		PrevMonth: dateutil.ShiftMonth(ref, -1).Format(dateutil.MonthLayout),
		NextMonth: dateutil.ShiftMonth(ref, 1).Format(dateutil.MonthLayout),
		Days:      make([]transfer.CalendarDayView, 0, len(buckets)),
	}
	for _, day := range buckets {
		overflow := len(day.Posts) - MaxVisiblePostsPerDay
		if overflow < 0 {
			overflow = 0
		}
		view.Days = append(view.Days, transfer.CalendarDayView{
			Date:           dateutil.FormatDate(day.Date),
			IsCurrentMonth: day.IsCurrentMonth,
			IsToday:        day.IsToday,
			Posts:          day.Posts,
			Overflow:       overflow,
		})
	}
	return view, nil
}

// Reschedule translates a drag-drop target date into a partial update that
// touches only the date field. Dropping a post on the day it already sits
// on degenerates to an ordinary update with the same date.
func (s *calendarService) Reschedule(ctx context.Context, brandSlug, postID, date string) (*models.Post, error) {
	if _, err := dateutil.ParseDate(date); err != nil {
		slog.Info(err.Error())
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}
	return s.ps.Update(ctx, brandSlug, postID, &transfer.PostUpdate{Date: &date})
}

func filterPosts(posts []*models.Post, filter transfer.PostFilter) []*models.Post {
	if filter.Category == "" && filter.Status == "" {
		return posts
	}

	out := make([]*models.Post, 0, len(posts))
	for _, p := range posts {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		out = append(out, p)
	}
	return out
}
