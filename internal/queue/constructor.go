package queue

import (
	"fmt"
	"time"

	"github.com/maheshrc27/sheetcal/internal/models"
	"github.com/maheshrc27/sheetcal/internal/repository"
	"github.com/maheshrc27/sheetcal/internal/service"
	"github.com/maheshrc27/sheetcal/pkg/dateutil"
)

// Queue publishes due posts: it is the external process that stamps
// Posted_At, which the CRUD paths never touch.
type Queue struct {
	br service.BrandService
	pr repository.PostRepository
}

func NewQueue(br service.BrandService, pr repository.PostRepository) *Queue {
	return &Queue{
		br: br,
		pr: pr,
	}
}

const TaskTypePublishPost = "publish:post"

type PublishPostPayload struct {
	Brand  string `json:"brand"`
	PostID string `json:"post_id"`
}

// DueAt resolves the wall-clock instant a post is scheduled for. A post
// without a time is due at the start of its day.
func DueAt(p *models.Post) (time.Time, error) {
	if p.Time == "" {
		return time.ParseInLocation(dateutil.DateLayout, p.Date, time.Local)
	}
	return time.ParseInLocation(
		fmt.Sprintf("%s %s", dateutil.DateLayout, dateutil.TimeLayout),
		fmt.Sprintf("%s %s", p.Date, p.Time),
		time.Local,
	)
}
