package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"github.com/deppfellow/go-categories/internal/model/category"
)

const (
	// TaskCategoryEvent is the task type of category audit events.
	TaskCategoryEvent = "category:event"

	// QueueAudit receives audit events; it gets a small share of workers.
	QueueAudit = "low"
)

// NewCategoryEventTask serializes event into an asynq task.
//
// Audit events are retried a few times and dropped from the active set after
// a short timeout; losing one never affects the category itself.
func NewCategoryEventTask(event category.Event) (*asynq.Task, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskCategoryEvent,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueAudit),
		asynq.Timeout(30*time.Second),
	), nil
}
