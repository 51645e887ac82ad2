package models

import "time"

type Post struct {
	ID       string `json:"id"`
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // HH:MM wall clock, advisory
	Category string `json:"category"`
	Caption  string `json:"caption"`
	ImageURL string `json:"imageUrl"`
	Status   string `json:"status"` // Draft, Ready, Posted
	PostedAt string `json:"postedAt"`
}

const (
	PostStatusDraft  = "Draft"
	PostStatusReady  = "Ready"
	PostStatusPosted = "Posted"
)

// PostColumns is the fixed cell width of a post row in the sheet.
const PostColumns = 8

// PostFromRow decodes one sheet row into a Post. Short rows are padded with
// empty cells and an empty or unrecognized status falls back to Draft. The
// second return value is false when the id cell is blank, which covers
// trailing empty rows in the sheet.
func PostFromRow(row []string) (Post, bool) {
	cells := make([]string, PostColumns)
	copy(cells, row)

	post := Post{
		ID:       cells[0],
		Date:     cells[1],
		Time:     cells[2],
		Category: cells[3],
		Caption:  cells[4],
		ImageURL: cells[5],
		Status:   NormalizeStatus(cells[6]),
		PostedAt: cells[7],
	}

	return post, post.ID != ""
}

// Row encodes the post as a fixed 8-cell sheet row.
func (p Post) Row() []string {
	return []string{
		p.ID,
		p.Date,
		p.Time,
		p.Category,
		p.Caption,
		p.ImageURL,
		p.Status,
		p.PostedAt,
	}
}

func NormalizeStatus(status string) string {
	switch status {
	case PostStatusDraft, PostStatusReady, PostStatusPosted:
		return status
	default:
		return PostStatusDraft
	}
}

type CalendarDay struct {
	Date           time.Time
	IsCurrentMonth bool
	IsToday        bool
	Posts          []*Post
}
