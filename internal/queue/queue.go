package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
)

// EnqueuePublish schedules a publish task for a post. The task id is
// derived from brand and post id so the periodic sweep can re-enqueue the
// same post without creating duplicates.
func EnqueuePublish(asynqClient *asynq.Client, payload PublishPostPayload, delay time.Duration) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypePublishPost, taskPayload)

	_, err = asynqClient.Enqueue(task,
		asynq.ProcessIn(delay),
		asynq.TaskID(fmt.Sprintf("publish:%s:%s", payload.Brand, payload.PostID)),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	if err != nil {
		return err
	}

	log.Printf("Publish task scheduled: %+v", payload)
	return nil
}
