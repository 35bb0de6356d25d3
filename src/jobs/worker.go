package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"QuickTech-Backend/src/services/notification"
)

// HandleNotifySubmission emails the site owner about a new submission.
func HandleNotifySubmission(sender notification.MailSender, to, dashboardURL string, log *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p NotifySubmissionPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error("notify payload decode", zap.Error(err))
			// malformed payloads will never succeed
			return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
		}

		if to == "" {
			log.Warn("NOTIFY_EMAIL not set, skipping", zap.Int64("id", p.Submission.ID))
			return nil
		}

		subject, body, err := notification.RenderSubmissionEmail(p.Submission, dashboardURL)
		if err != nil {
			return fmt.Errorf("render: %v: %w", err, asynq.SkipRetry)
		}
		if err := sender.Send(to, subject, body); err != nil {
			log.Error("send submission email", zap.Int64("id", p.Submission.ID), zap.Error(err))
			return err
		}

		log.Info("submission email sent", zap.Int64("id", p.Submission.ID), zap.String("type", string(p.Submission.Type)))
		return nil
	}
}

// NewServeMux registers every task handler of the worker.
func NewServeMux(sender notification.MailSender, to, dashboardURL string, log *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeNotifySubmission, HandleNotifySubmission(sender, to, dashboardURL, log))
	return mux
}

// NewServer builds the asynq server consuming the notifications queue.
func NewServer(redis asynq.RedisClientOpt, log *zap.Logger) *asynq.Server {
	return asynq.NewServer(
		redis,
		asynq.Config{
			Concurrency: 5,
			Queues:      map[string]int{QueueNotifications: 1},
			Logger:      log.Sugar(),
		},
	)
}
