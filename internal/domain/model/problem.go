package model

import (
	"fmt"
	"strconv"
)

const problemsetBaseURL = "https://codeforces.com/problemset/problem"

// Problem represents a Codeforces problem as reported alongside a submission.
type Problem struct {
	ContestID int
	Index     string
	Name      string
	Rating    *int
	Tags      []string
}

// ID returns the identifier used to de-duplicate submissions, e.g. "1850-C".
func (p Problem) ID() string {
	return strconv.Itoa(p.ContestID) + "-" + p.Index
}

// Link returns the problemset URL of the problem.
func (p Problem) Link() string {
	return fmt.Sprintf("%s/%d/%s", problemsetBaseURL, p.ContestID, p.Index)
}

// Ref converts the problem into the name/link pair shown to users.
func (p Problem) Ref() ProblemRef {
	return ProblemRef{Name: p.Name, Link: p.Link()}
}

// RatingKey returns the key under which the problem is grouped.
func (p Problem) RatingKey() RatingKey {
	if p.Rating == nil {
		return UnknownRating
	}
	return RatingKeyOf(*p.Rating)
}

// ProblemRef is the name/link pair listed when a bucket is opened.
type ProblemRef struct {
	Name string `json:"name"`
	Link string `json:"link"`
}
