package job

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/sheetcal/internal/models"
	"github.com/maheshrc27/sheetcal/internal/queue"
	"github.com/maheshrc27/sheetcal/internal/repository"
	"github.com/maheshrc27/sheetcal/internal/service"
)

type PublishSweepJob struct {
	br     service.BrandService
	pr     repository.PostRepository
	client *asynq.Client
}

func NewPublishSweepJob(
	br service.BrandService,
	pr repository.PostRepository,
	client *asynq.Client) *PublishSweepJob {
	return &PublishSweepJob{
		br: br,
		pr: pr,
		client: client,
	}
}

// SweepDuePosts scans every brand's sheet for Ready posts scheduled within
// the next hour and enqueues a publish task for each with its remaining
// delay. Enqueueing is idempotent per post, so overlapping sweeps are safe.
func (j *PublishSweepJob) SweepDuePosts() {
	ctx := context.Background()

	currentTime := time.Now()
	horizon := currentTime.Add(1 * time.Hour)

	var wg sync.WaitGroup

	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)

	for _, brand := range j.br.List() {
		if brand.SheetID == "" {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(brand *models.Brand) {
			defer wg.Done()
			defer func() { <-semaphore }()

			posts, err := j.pr.List(ctx, brand.SheetID)
			if err != nil {
				slog.Info(err.Error())
				return
			}

			for _, post := range posts {
				if post.Status != models.PostStatusReady || post.PostedAt != "" {
					continue
				}

				due, err := queue.DueAt(post)
				if err != nil {
					slog.Info(err.Error())
					continue
				}
				if due.After(horizon) {
					continue
				}

				delay := time.Until(due)
				if delay < 0 {
					delay = 0
				}

				payload := queue.PublishPostPayload{Brand: brand.Slug, PostID: post.ID}
				if err := queue.EnqueuePublish(j.client, payload, delay); err != nil {
					slog.Info(err.Error())
				}
			}
		}(brand)
	}

	wg.Wait()
}
