package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/deppfellow/go-categories/internal/model/category"
)

// PublishCategoryEvent enqueues event for the audit worker.
func (j *JobService) PublishCategoryEvent(ctx context.Context, event category.Event) error {
	task, err := NewCategoryEventTask(event)
	if err != nil {
		return fmt.Errorf("failed to build category event task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue category event: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("action", event.Action).
		Msg("enqueued category event")

	return nil
}

// handleCategoryEventTask writes the audit record of a category change.
func (j *JobService) handleCategoryEventTask(ctx context.Context, t *asynq.Task) error {
	var event category.Event
	if err := json.Unmarshal(t.Payload(), &event); err != nil {
		// A payload that doesn't decode will never decode; don't retry it.
		return fmt.Errorf("failed to unmarshal category event payload: %v: %w", err, asynq.SkipRetry)
	}

	j.logger.Info().
		Str("type", "category_audit").
		Str("action", event.Action).
		Str("category_id", event.Category.ID.String()).
		Str("category_name", event.Category.Name).
		Time("occurred_at", event.OccurredAt).
		Msg("category changed")

	return nil
}
