package submission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"QuickTech-Backend/src/metrics"
	"QuickTech-Backend/src/models"
)

// Notifier is told about every stored submission. Failures never undo the write.
type Notifier interface {
	SubmissionCreated(ctx context.Context, sub models.Submission) error
}

// Service turns raw form payloads into normalized submissions.
type Service struct {
	store    Store
	log      *zap.Logger
	now      func() time.Time
	notifier Notifier
	metrics  *metrics.Metrics
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func NewService(store Store, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// RecordContact stores a validated contact form.
func (s *Service) RecordContact(ctx context.Context, req models.ContactRequest) (models.Submission, error) {
	return s.record(ctx, s.stamp(), models.SubmissionContact, req.Map())
}

// RecordQuote stores a quote request as submitted.
func (s *Service) RecordQuote(ctx context.Context, fields map[string]any) (models.Submission, error) {
	return s.record(ctx, s.stamp(), models.SubmissionQuote, copyData(fields))
}

// RecordAuthEvent stores a signup or login event. Password fields are never kept.
func (s *Service) RecordAuthEvent(ctx context.Context, kind models.SubmissionType, fields map[string]any) (models.Submission, error) {
	createdAt := s.stamp()
	if !kind.IsAuth() {
		return models.Submission{}, fmt.Errorf("%w: %q", ErrInvalidType, kind)
	}
	data := copyData(fields)
	delete(data, "password")
	delete(data, "confirmPassword")
	return s.record(ctx, createdAt, kind, data)
}

func (s *Service) stamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func (s *Service) record(ctx context.Context, createdAt time.Time, kind models.SubmissionType, data map[string]any) (models.Submission, error) {
	email, phone := ContactChannels(kind, data)

	sub, err := s.store.Create(ctx, models.NewSubmission{
		Type:        kind,
		Data:        data,
		CreatedAt:   createdAt,
		Email:       email,
		PhoneNumber: phone,
	})
	if err != nil {
		s.log.Error("store submission", zap.String("type", string(kind)), zap.Error(err))
		return models.Submission{}, fmt.Errorf("store %s submission: %w", kind, err)
	}

	s.log.Info("submission stored",
		zap.Int64("id", sub.ID),
		zap.String("type", string(sub.Type)),
		zap.String("email", sub.Email),
	)
	if s.metrics != nil {
		s.metrics.SubmissionsCreated.WithLabelValues(string(sub.Type)).Inc()
	}

	if s.notifier != nil {
		if err := s.notifier.SubmissionCreated(ctx, sub); err != nil {
			s.log.Warn("notify submission", zap.Int64("id", sub.ID), zap.Error(err))
			if s.metrics != nil {
				s.metrics.NotifyFailures.Inc()
			}
		}
	}
	return sub, nil
}

func (s *Service) List(ctx context.Context) ([]models.Submission, error) {
	return s.store.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (models.Submission, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) MarkViewed(ctx context.Context, id int64) error {
	if err := s.store.MarkViewed(ctx, id); err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.log.Error("mark submission viewed", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}
	s.log.Info("submission viewed", zap.Int64("id", id))
	if s.metrics != nil {
		s.metrics.SubmissionsViewed.Inc()
	}
	return nil
}

// Stats returns the dashboard counts over the current list.
func (s *Service) Stats(ctx context.Context) (models.SubmissionStats, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return models.SubmissionStats{}, err
	}
	return models.Summarize(list), nil
}
