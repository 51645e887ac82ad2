package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/sheetcal/internal/models"
)

func (q *Queue) HandlePublishPostTask(ctx context.Context, task *asynq.Task) error {
	var payload PublishPostPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return q.PublishPost(ctx, payload.Brand, payload.PostID)
}

// PublishPost marks a post as published if it is still eligible when the
// task fires. Everything is re-checked against the current sheet state:
// the post may have been deleted, rescheduled or edited between enqueue and
// execution, in which case the task is dropped and a later sweep picks the
// post up again if it becomes due.
func (q *Queue) PublishPost(ctx context.Context, brandSlug, postID string) error {
	brand, ok := q.br.GetBySlug(brandSlug)
	if !ok {
		log.Printf("Unknown brand %s for PostID %s, dropping task", brandSlug, postID)
		return nil
	}

	posts, err := q.pr.List(ctx, brand.SheetID)
	if err != nil {
		return err
	}

	var post *models.Post
	for _, p := range posts {
		if p.ID == postID {
			post = p
			break
		}
	}
	if post == nil {
		log.Printf("PostID %s no longer exists in brand %s, dropping task", postID, brandSlug)
		return nil
	}

	if post.Status != models.PostStatusReady || post.PostedAt != "" {
		return nil
	}

	due, err := DueAt(post)
	if err != nil {
		log.Printf("PostID %s has an unparseable schedule, dropping task: %v", postID, err)
		return nil
	}
	if due.After(time.Now()) {
		// Rescheduled into the future since the sweep saw it.
		return nil
	}

	postedAt := time.Now().UTC().Format(time.RFC3339)
	if _, err := q.pr.MarkPosted(ctx, brand.SheetID, postID, postedAt); err != nil {
		return err
	}

	log.Printf("Published PostID %s for brand %s", postID, brandSlug)
	return nil
}
