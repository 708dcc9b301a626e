package usecase

import (
	"context"
	"errors"

	"cftracker/internal/domain/model"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type fakeProvider struct {
	byHandle map[string][]model.Submission
	err      error
	calls    int
}

func (f *fakeProvider) GetSubmissions(_ context.Context, handle string) ([]model.Submission, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	subs, ok := f.byHandle[handle]
	if !ok {
		return nil, model.ErrHandleNotFound
	}
	return subs, nil
}

type fakeCache struct {
	entries map[string][]model.Submission
	getErr  error
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]model.Submission)}
}

func (f *fakeCache) Get(_ context.Context, handle string) ([]model.Submission, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	subs, ok := f.entries[handle]
	return subs, ok, nil
}

func (f *fakeCache) Set(_ context.Context, handle string, subs []model.Submission) error {
	f.sets++
	f.entries[handle] = subs
	return nil
}

type fakeNotifier struct {
	sent []model.Notification
	err  error
}

func (f *fakeNotifier) Send(_ context.Context, n model.Notification) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, n)
	return nil
}

var errBoom = errors.New("boom")

func rating(v int) *int { return &v }

func sub(contestID int, index string, verdict model.Verdict, r *int) model.Submission {
	return model.Submission{
		Problem: model.Problem{
			ContestID: contestID,
			Index:     index,
			Name:      "Problem " + index,
			Rating:    r,
		},
		Verdict: verdict,
	}
}
