package usecase

import (
	"sort"

	"cftracker/internal/domain/model"
)

// BuildChart folds one classification mapping into the fixed rating buckets.
// Every label of model.BucketLabels is present, empty buckets included.
func BuildChart(kind model.Kind, byRating map[model.RatingKey][]model.ProblemRef) model.Chart {
	labels := model.BucketLabels()
	problems := make(map[string][]model.ProblemRef, len(labels))

	for _, key := range sortedKeys(byRating) {
		label := model.BucketFor(key)
		problems[label] = append(problems[label], byRating[key]...)
	}

	bars := make([]model.Bar, 0, len(labels))
	for _, label := range labels {
		bars = append(bars, model.Bar{
			Label: label,
			Count: len(problems[label]),
			Tier:  model.TierFor(label),
		})
	}

	return model.Chart{Kind: kind, Bars: bars, Problems: problems}
}

// sortedKeys orders numeric ratings ascending, followed by anything else.
func sortedKeys(byRating map[model.RatingKey][]model.ProblemRef) []model.RatingKey {
	keys := make([]model.RatingKey, 0, len(byRating))
	for k := range byRating {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, iok := keys[i].Rating()
		rj, jok := keys[j].Rating()
		switch {
		case iok && jok:
			return ri < rj
		case iok != jok:
			return iok
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
