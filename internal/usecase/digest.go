package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cftracker/internal/domain/model"
	"cftracker/internal/domain/ports"
)

const (
	profileBaseURL     = "https://codeforces.com/profile/"
	digestColor        = 0x1F8ACB
	defaultBarWidth    = 20
	defaultReviewCount = 5
	noStrugglesMessage = "No problems with unsuccessful submissions found."
)

// Digest analyses a fixed set of handles and sends one notification per handle.
type Digest struct {
	analyzer    *Analyzer
	notifier    ports.Notifier
	logger      ports.Logger
	handles     []string
	barWidth    int
	reviewCount int
}

// DigestConfig controls optional behaviours for the digest.
type DigestConfig struct {
	Handles     []string
	BarWidth    int
	ReviewCount int
}

// NewDigest constructs a Digest use case.
func NewDigest(analyzer *Analyzer, notifier ports.Notifier, logger ports.Logger, cfg DigestConfig) *Digest {
	if cfg.BarWidth <= 0 {
		cfg.BarWidth = defaultBarWidth
	}
	if cfg.ReviewCount <= 0 {
		cfg.ReviewCount = defaultReviewCount
	}
	return &Digest{
		analyzer:    analyzer,
		notifier:    notifier,
		logger:      logger,
		handles:     cfg.Handles,
		barWidth:    cfg.BarWidth,
		reviewCount: cfg.ReviewCount,
	}
}

// Run executes the digest for every handle. A failing handle does not stop the
// others; all failures are returned together.
func (d *Digest) Run(ctx context.Context) error {
	start := time.Now()
	d.logger.Info(ctx, "starting digest", "handles", len(d.handles))

	var errs []error
	for _, handle := range d.handles {
		if err := d.runHandle(ctx, handle); err != nil {
			d.logger.Error(ctx, "digest failed for handle", "handle", handle, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", handle, err))
		}
	}

	d.logger.Info(ctx, "digest completed", "duration", time.Since(start), "failures", len(errs))
	return errors.Join(errs...)
}

func (d *Digest) runHandle(ctx context.Context, handle string) error {
	report, err := d.analyzer.Analyze(ctx, handle)
	if err != nil {
		return err
	}
	return d.notifier.Send(ctx, d.BuildNotification(report))
}

// BuildNotification renders a report as a digest message.
func (d *Digest) BuildNotification(report *model.Report) model.Notification {
	fields := []model.NotificationField{
		{Name: "Solved by rating", Value: formatChart(report.Solved, d.barWidth)},
		{Name: "Struggled by rating", Value: formatChart(report.Struggled, d.barWidth)},
	}

	if review := hardestStruggles(report.Struggled, d.reviewCount); len(review) > 0 {
		fields = append(fields, model.NotificationField{
			Name:  "Worth another try",
			Value: formatReviewQueue(review),
		})
	}

	description := fmt.Sprintf("%d submissions analysed, %d problems solved, %d with failed attempts.",
		report.Submissions, report.Solved.Total(), report.Struggled.Total())
	if report.Struggled.Total() == 0 {
		description += "\n" + noStrugglesMessage
	}

	return model.Notification{
		Title:       "Codeforces digest for " + report.Handle,
		URL:         profileBaseURL + report.Handle,
		Description: description,
		Color:       digestColor,
		Fields:      fields,
	}
}

// formatChart draws the non-empty bars of a chart as a monospace block.
func formatChart(chart model.Chart, width int) string {
	peak := chart.Max()
	if peak == 0 {
		return "_none_"
	}

	var builder strings.Builder
	builder.WriteString("```\n")
	for _, bar := range chart.Bars {
		if bar.Count == 0 {
			continue
		}
		filled := bar.Count * width / peak
		if filled == 0 {
			filled = 1
		}
		builder.WriteString(fmt.Sprintf("%5s %s %d\n", bar.Label, strings.Repeat("█", filled), bar.Count))
	}
	builder.WriteString("```")
	return builder.String()
}

// hardestStruggles picks up to limit struggled problems, highest rated bucket first.
func hardestStruggles(chart model.Chart, limit int) []model.ProblemRef {
	labels := model.BucketLabels()
	picked := make([]model.ProblemRef, 0, limit)
	for i := len(labels) - 2; i >= 0 && len(picked) < limit; i-- {
		for _, ref := range chart.Lookup(labels[i]) {
			if len(picked) == limit {
				break
			}
			picked = append(picked, ref)
		}
	}
	return picked
}

func formatReviewQueue(refs []model.ProblemRef) string {
	lines := make([]string, 0, len(refs))
	for i, ref := range refs {
		lines = append(lines, fmt.Sprintf("**%d.** [%s](%s)", i+1, ref.Name, ref.Link))
	}
	return strings.Join(lines, "\n")
}
