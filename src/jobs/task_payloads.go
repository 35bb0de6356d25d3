package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"QuickTech-Backend/src/models"
)

const (
	TypeNotifySubmission = "submissions:notify"
	QueueNotifications   = "notifications"
)

type NotifySubmissionPayload struct {
	Submission models.Submission `json:"submission"`
}

// NewNotifySubmissionTask carries the whole record so the worker never reads the store.
func NewNotifySubmissionTask(sub models.Submission) (*asynq.Task, error) {
	payload, err := json.Marshal(NotifySubmissionPayload{Submission: sub})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifySubmission, payload), nil
}

// NotifySubmissionTaskID dedupes re-enqueues of one record. Ids restart with an
// in-memory store, so the creation time keeps a new run from colliding with tasks
// still retained from an earlier one.
func NotifySubmissionTaskID(sub models.Submission) string {
	return fmt.Sprintf("notify-submission-%d-%d", sub.ID, sub.CreatedAt.UnixMilli())
}

// Enqueuer is the subset of *asynq.Client used to publish tasks.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// SubmissionNotifier enqueues a notification task for every stored submission.
type SubmissionNotifier struct {
	client Enqueuer
}

func NewSubmissionNotifier(client Enqueuer) *SubmissionNotifier {
	return &SubmissionNotifier{client: client}
}

func (n *SubmissionNotifier) SubmissionCreated(ctx context.Context, sub models.Submission) error {
	task, err := NewNotifySubmissionTask(sub)
	if err != nil {
		return err
	}
	_, err = n.client.EnqueueContext(ctx, task,
		asynq.Queue(QueueNotifications),
		asynq.TaskID(NotifySubmissionTaskID(sub)),
		asynq.MaxRetry(5),
	)
	return err
}
