package model

import "time"

// Verdict is the judging outcome reported by the platform.
type Verdict string

const (
	VerdictOK                Verdict = "OK"
	VerdictWrongAnswer       Verdict = "WRONG_ANSWER"
	VerdictPresentationError Verdict = "PRESENTATION_ERROR"
	VerdictCompilationError  Verdict = "COMPILATION_ERROR"
	VerdictTimeLimitExceeded Verdict = "TIME_LIMIT_EXCEEDED"
	VerdictRuntimeError      Verdict = "RUNTIME_ERROR"
)

// IsStruggle reports whether the verdict counts as an unsuccessful attempt.
func (v Verdict) IsStruggle() bool {
	return v == VerdictWrongAnswer || v == VerdictPresentationError
}

// Submission is a single judged attempt. Providers return them most recent first.
type Submission struct {
	ID        int64
	Problem   Problem
	Verdict   Verdict
	CreatedAt time.Time
}
