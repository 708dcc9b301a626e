package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cftracker/internal/domain/model"
)

func TestDigestSendsOneNotificationPerHandle(t *testing.T) {
	provider := &fakeProvider{byHandle: map[string][]model.Submission{
		"alice": {
			sub(1, "A", model.VerdictOK, rating(800)),
			sub(1, "B", model.VerdictWrongAnswer, rating(2100)),
		},
		"bob": {sub(2, "A", model.VerdictOK, rating(1200))},
	}}
	notifier := &fakeNotifier{}
	digest := NewDigest(NewAnalyzer(provider, nil, nopLogger{}, ClassifyOptions{}), notifier, nopLogger{},
		DigestConfig{Handles: []string{"alice", "bob"}})

	require.NoError(t, digest.Run(context.Background()))
	require.Len(t, notifier.sent, 2)

	alice := notifier.sent[0]
	assert.Equal(t, "Codeforces digest for alice", alice.Title)
	assert.Equal(t, "https://codeforces.com/profile/alice", alice.URL)
	require.Len(t, alice.Fields, 3)
	assert.Contains(t, alice.Fields[0].Value, "  800 ")
	assert.Contains(t, alice.Fields[1].Value, " 2100 ")
	assert.Contains(t, alice.Fields[2].Value, "[Problem B](https://codeforces.com/problemset/problem/1/B)")

	bob := notifier.sent[1]
	assert.Contains(t, bob.Description, noStrugglesMessage)
	assert.Equal(t, "_none_", bob.Fields[1].Value)
	assert.Len(t, bob.Fields, 2)
}

func TestDigestContinuesAfterFailure(t *testing.T) {
	provider := &fakeProvider{byHandle: map[string][]model.Submission{
		"bob": {sub(2, "A", model.VerdictOK, rating(1200))},
	}}
	notifier := &fakeNotifier{}
	digest := NewDigest(NewAnalyzer(provider, nil, nopLogger{}, ClassifyOptions{}), notifier, nopLogger{},
		DigestConfig{Handles: []string{"ghost", "bob"}})

	err := digest.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrHandleNotFound)
	assert.Contains(t, err.Error(), "ghost")
	assert.Len(t, notifier.sent, 1)
}

func TestFormatChartScalesToWidest(t *testing.T) {
	chart := BuildChart(model.KindSolved, map[model.RatingKey][]model.ProblemRef{
		"800":  {{}, {}, {}, {}},
		"1000": {{}},
	})

	out := formatChart(chart, 8)
	assert.Contains(t, out, "  800 ████████ 4\n")
	assert.Contains(t, out, " 1000 ██ 1\n")
	assert.NotContains(t, out, " 900 ")
}

func TestHardestStrugglesPrefersHighRatings(t *testing.T) {
	chart := BuildChart(model.KindStruggled, map[model.RatingKey][]model.ProblemRef{
		"800":               {{Name: "easy"}},
		"2400":              {{Name: "hard"}},
		model.UnknownRating: {{Name: "unrated"}},
	})

	refs := hardestStruggles(chart, 5)
	require.Len(t, refs, 2)
	assert.Equal(t, "hard", refs[0].Name)
	assert.Equal(t, "easy", refs[1].Name)
}

func TestDigestDescriptionCountsFailedAttempts(t *testing.T) {
	provider := &fakeProvider{byHandle: map[string][]model.Submission{
		"alice": {
			sub(1, "A", model.VerdictOK, rating(800)),
			sub(1, "A", model.VerdictWrongAnswer, rating(800)),
		},
	}}

	for _, opts := range []ClassifyOptions{{}, {KeepSolved: true}} {
		notifier := &fakeNotifier{}
		digest := NewDigest(NewAnalyzer(provider, nil, nopLogger{}, opts), notifier, nopLogger{},
			DigestConfig{Handles: []string{"alice"}})
		require.NoError(t, digest.Run(context.Background()))
		require.Len(t, notifier.sent, 1)

		description := notifier.sent[0].Description
		assert.NotContains(t, description, "unsolved")
		if opts.KeepSolved {
			assert.Contains(t, description, "1 problems solved, 1 with failed attempts.")
		} else {
			assert.Contains(t, description, "1 problems solved, 0 with failed attempts.")
		}
	}
}
