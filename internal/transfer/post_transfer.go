package transfer

import "github.com/maheshrc27/sheetcal/internal/models"

type PostForm struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Category string `json:"category"`
	Caption  string `json:"caption"`
	ImageURL string `json:"imageUrl"`
	Status   string `json:"status"`
}

// PostUpdate is a partial update: nil fields are left untouched on the
// stored row. The post id and Posted_At are never part of an update.
type PostUpdate struct {
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Category *string `json:"category"`
	Caption  *string `json:"caption"`
	ImageURL *string `json:"imageUrl"`
	Status   *string `json:"status"`
}

type RescheduleRequest struct {
	Date string `json:"date"`
}

// PostFilter narrows a post list. An empty dimension passes everything;
// set dimensions combine with AND semantics.
type PostFilter struct {
	Category string
	Status   string
}

type CalendarDayView struct {
	Date           string         `json:"date"`
	IsCurrentMonth bool           `json:"isCurrentMonth"`
	IsToday        bool           `json:"isToday"`
	Posts          []*models.Post `json:"posts"`
	Overflow       int            `json:"overflow"`
}

type MonthView struct {
	Month     string            `json:"month"`
	PrevMonth string            `json:"prevMonth"`
	NextMonth string            `json:"nextMonth"`
	Days      []CalendarDayView `json:"days"`
}
