// Package match implements the job-to-résumé matching engine: requirement
// weighting, compatibility scoring, gap analysis, and recommendation
// generation, composed by Engine.EvaluateMatch.
package match

import "fmt"

// EmptyRequirementsError reports a job with zero requirements. The score is
// mathematically undefined in that case, so the engine refuses to fabricate
// one.
type EmptyRequirementsError struct{}

func (e *EmptyRequirementsError) Error() string {
	return "job has no requirements; match score is undefined"
}

// MalformedInputError reports an input snapshot that is structurally broken
// (nil snapshot, requirement without skill text, invalid enum value).
// Callers should treat this as a data-integrity problem, not a user-facing
// condition.
type MalformedInputError struct {
	Message string
	Cause   error
}

func (e *MalformedInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed input: %s", e.Message)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Cause
}
