package usecase

import "cftracker/internal/domain/model"

// ClassifyOptions controls how the two mappings relate to each other.
type ClassifyOptions struct {
	// KeepSolved leaves a solved problem in the struggled mapping when it also
	// has WRONG_ANSWER or PRESENTATION_ERROR submissions. By default solved
	// problems are removed from struggled.
	KeepSolved bool
}

// Classify groups the distinct problems of submissions into solved and
// struggled mappings keyed by rating. Submissions are visited in the given
// order and the first submission seen for a problem decides its entry.
func Classify(submissions []model.Submission, opts ClassifyOptions) model.Classification {
	result := model.NewClassification()
	solvedSeen := make(map[string]struct{})
	struggledSeen := make(map[string]struct{})

	for _, s := range submissions {
		id := s.Problem.ID()
		key := s.Problem.RatingKey()

		switch {
		case s.Verdict == model.VerdictOK:
			if _, ok := solvedSeen[id]; ok {
				continue
			}
			solvedSeen[id] = struct{}{}
			result.Solved[key] = append(result.Solved[key], s.Problem.Ref())
		case s.Verdict.IsStruggle():
			if _, ok := struggledSeen[id]; ok {
				continue
			}
			struggledSeen[id] = struct{}{}
			result.Struggled[key] = append(result.Struggled[key], s.Problem.Ref())
		}
	}

	if !opts.KeepSolved {
		dropSolved(result.Struggled, solvedLinks(result.Solved))
	}

	return result
}

func solvedLinks(solved map[model.RatingKey][]model.ProblemRef) map[string]struct{} {
	links := make(map[string]struct{})
	for _, refs := range solved {
		for _, ref := range refs {
			links[ref.Link] = struct{}{}
		}
	}
	return links
}

func dropSolved(struggled map[model.RatingKey][]model.ProblemRef, solved map[string]struct{}) {
	for key, refs := range struggled {
		kept := refs[:0]
		for _, ref := range refs {
			if _, ok := solved[ref.Link]; !ok {
				kept = append(kept, ref)
			}
		}
		if len(kept) == 0 {
			delete(struggled, key)
			continue
		}
		struggled[key] = kept
	}
}
