package model

import (
	"fmt"
	"strconv"
	"strings"
)

// RatingKey groups problems by rating. It is the decimal rating or UnknownRating.
type RatingKey string

// UnknownRating collects problems the platform has not rated.
const UnknownRating RatingKey = "unknown"

// RatingKeyOf returns the key for a known rating.
func RatingKeyOf(rating int) RatingKey {
	return RatingKey(strconv.Itoa(rating))
}

// Rating returns the numeric rating, or false for UnknownRating and malformed keys.
func (k RatingKey) Rating() (int, bool) {
	n, err := strconv.Atoi(string(k))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Kind selects one of the two classification mappings.
type Kind string

const (
	KindSolved    Kind = "solved"
	KindStruggled Kind = "struggled"
)

// ParseKind validates a user supplied kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindSolved:
		return KindSolved, nil
	case KindStruggled:
		return KindStruggled, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// Classification holds distinct problems grouped by rating.
// Within each mapping a problem appears at most once.
type Classification struct {
	Solved    map[RatingKey][]ProblemRef
	Struggled map[RatingKey][]ProblemRef
}

// NewClassification returns an empty classification.
func NewClassification() Classification {
	return Classification{
		Solved:    make(map[RatingKey][]ProblemRef),
		Struggled: make(map[RatingKey][]ProblemRef),
	}
}

// Of returns the mapping for kind.
func (c Classification) Of(kind Kind) map[RatingKey][]ProblemRef {
	if kind == KindSolved {
		return c.Solved
	}
	return c.Struggled
}

// Lookup returns the problems of kind filed under key.
func (c Classification) Lookup(kind Kind, key RatingKey) []ProblemRef {
	return c.Of(kind)[key]
}

// Count returns the number of distinct problems of kind.
func (c Classification) Count(kind Kind) int {
	total := 0
	for _, refs := range c.Of(kind) {
		total += len(refs)
	}
	return total
}
