package cache

import (
	"time"

	"cftracker/internal/domain/model"
)

// entry is the serialised form of a submission; model types carry no JSON tags.
type entry struct {
	ID        int64     `json:"id"`
	ContestID int       `json:"contestId"`
	Index     string    `json:"index"`
	Name      string    `json:"name"`
	Rating    *int      `json:"rating,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Verdict   string    `json:"verdict"`
	CreatedAt time.Time `json:"createdAt"`
}

func toEntries(submissions []model.Submission) []entry {
	out := make([]entry, 0, len(submissions))
	for _, s := range submissions {
		out = append(out, entry{
			ID:        s.ID,
			ContestID: s.Problem.ContestID,
			Index:     s.Problem.Index,
			Name:      s.Problem.Name,
			Rating:    s.Problem.Rating,
			Tags:      s.Problem.Tags,
			Verdict:   string(s.Verdict),
			CreatedAt: s.CreatedAt,
		})
	}
	return out
}

func fromEntries(entries []entry) []model.Submission {
	out := make([]model.Submission, 0, len(entries))
	for _, e := range entries {
		out = append(out, model.Submission{
			ID: e.ID,
			Problem: model.Problem{
				ContestID: e.ContestID,
				Index:     e.Index,
				Name:      e.Name,
				Rating:    e.Rating,
				Tags:      e.Tags,
			},
			Verdict:   model.Verdict(e.Verdict),
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
