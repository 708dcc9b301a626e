package ports

import (
	"context"

	"cftracker/internal/domain/model"
)

// SubmissionProvider fetches the submission history of a handle, most recent first.
type SubmissionProvider interface {
	GetSubmissions(ctx context.Context, handle string) ([]model.Submission, error)
}
