package submission

import (
	"context"
	"errors"

	"QuickTech-Backend/src/models"
)

var (
	ErrNotFound    = errors.New("submission not found")
	ErrInvalidType = errors.New("invalid submission type")
)

// Store owns submission identity and persistence. Implementations assign ids that are
// unique and strictly increasing, and never delete records.
type Store interface {
	Create(ctx context.Context, in models.NewSubmission) (models.Submission, error)
	// List returns every submission in ascending id order as a fresh slice.
	List(ctx context.Context) ([]models.Submission, error)
	GetByID(ctx context.Context, id int64) (models.Submission, error)
	// MarkViewed sets viewed=true; marking an already viewed record is not an error.
	MarkViewed(ctx context.Context, id int64) error
}
