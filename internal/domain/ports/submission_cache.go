package ports

import (
	"context"

	"cftracker/internal/domain/model"
)

// SubmissionCache stores fetched submission histories keyed by handle.
// Get reports false on a miss.
type SubmissionCache interface {
	Get(ctx context.Context, handle string) ([]model.Submission, bool, error)
	Set(ctx context.Context, handle string, submissions []model.Submission) error
}
