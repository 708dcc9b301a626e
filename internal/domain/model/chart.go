package model

import "time"

// Bar is one bucket of a rating chart.
type Bar struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Tier  Tier   `json:"tier"`
}

// Chart is a fixed-bucket histogram of one classification mapping.
type Chart struct {
	Kind     Kind                    `json:"kind"`
	Bars     []Bar                   `json:"bars"`
	Problems map[string][]ProblemRef `json:"-"`
}

// Lookup returns the problems behind the bar labelled label.
func (c Chart) Lookup(label string) []ProblemRef {
	return c.Problems[label]
}

// Total returns the number of problems across all bars.
func (c Chart) Total() int {
	total := 0
	for _, b := range c.Bars {
		total += b.Count
	}
	return total
}

// Max returns the largest bar count.
func (c Chart) Max() int {
	peak := 0
	for _, b := range c.Bars {
		if b.Count > peak {
			peak = b.Count
		}
	}
	return peak
}

// Report is the outcome of analysing one handle.
type Report struct {
	Handle         string         `json:"handle"`
	Submissions    int            `json:"submissions"`
	FetchedAt      time.Time      `json:"fetchedAt"`
	Classification Classification `json:"-"`
	Solved         Chart          `json:"solved"`
	Struggled      Chart          `json:"struggled"`
}

// Chart returns the chart of kind.
func (r *Report) Chart(kind Kind) Chart {
	if kind == KindSolved {
		return r.Solved
	}
	return r.Struggled
}
