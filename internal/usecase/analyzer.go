package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cftracker/internal/domain/model"
	"cftracker/internal/domain/ports"
)

// Analyzer fetches a handle's submissions and turns them into a Report.
type Analyzer struct {
	submissions ports.SubmissionProvider
	cache       ports.SubmissionCache
	logger      ports.Logger
	opts        ClassifyOptions
	now         func() time.Time
}

// NewAnalyzer constructs an Analyzer. cache may be nil.
func NewAnalyzer(
	submissions ports.SubmissionProvider,
	cache ports.SubmissionCache,
	logger ports.Logger,
	opts ClassifyOptions,
) *Analyzer {
	return &Analyzer{
		submissions: submissions,
		cache:       cache,
		logger:      logger,
		opts:        opts,
		now:         time.Now,
	}
}

// Analyze builds the solved and struggled charts for handle.
func (a *Analyzer) Analyze(ctx context.Context, handle string) (*model.Report, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, fmt.Errorf("%w: handle is empty", model.ErrInvalidHandle)
	}

	submissions, err := a.load(ctx, handle)
	if err != nil {
		return nil, err
	}

	classification := Classify(submissions, a.opts)
	report := &model.Report{
		Handle:         handle,
		Submissions:    len(submissions),
		FetchedAt:      a.now().UTC(),
		Classification: classification,
		Solved:         BuildChart(model.KindSolved, classification.Solved),
		Struggled:      BuildChart(model.KindStruggled, classification.Struggled),
	}

	a.logger.Info(ctx, "handle analyzed",
		"handle", handle,
		"submissions", report.Submissions,
		"solved", report.Solved.Total(),
		"struggled", report.Struggled.Total(),
	)
	return report, nil
}

func (a *Analyzer) load(ctx context.Context, handle string) ([]model.Submission, error) {
	if a.cache != nil {
		cached, ok, err := a.cache.Get(ctx, handle)
		switch {
		case err != nil:
			a.logger.Warn(ctx, "submission cache read failed", "handle", handle, "error", err)
		case ok:
			a.logger.Debug(ctx, "submission cache hit", "handle", handle, "count", len(cached))
			return cached, nil
		}
	}

	submissions, err := a.submissions.GetSubmissions(ctx, handle)
	if err != nil {
		a.logger.Error(ctx, "failed to fetch submissions", "handle", handle, "error", err)
		return nil, err
	}

	if a.cache != nil {
		if err := a.cache.Set(ctx, handle, submissions); err != nil {
			a.logger.Warn(ctx, "submission cache write failed", "handle", handle, "error", err)
		}
	}

	return submissions, nil
}
