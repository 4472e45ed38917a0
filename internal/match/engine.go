package match

import (
	"github.com/jonathan/match-engine/internal/catalog"
	"github.com/jonathan/match-engine/internal/normalize"
	"github.com/jonathan/match-engine/internal/types"
)

// Engine evaluates résumés against jobs. It holds only the immutable skill
// catalog and its normalizer, so one Engine is safe for concurrent use.
type Engine struct {
	cat  *catalog.Catalog
	norm *normalize.Normalizer
}

// New builds an Engine over the given catalog.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{cat: cat, norm: normalize.New(cat)}
}

// EvaluateMatch computes the full match result for one résumé against one
// job: compatibility score, matched and missing requirements, and ranked
// recommendations. It is pure and deterministic; identical inputs always
// produce identical results.
//
// A job with zero requirements returns *EmptyRequirementsError. A
// structurally broken snapshot returns *MalformedInputError. A résumé with
// zero skills is valid and scores 0 with every requirement reported as a
// gap.
func (e *Engine) EvaluateMatch(resume *types.ResumeSnapshot, job *types.JobSnapshot) (*types.MatchResult, error) {
	if resume == nil {
		return nil, &MalformedInputError{Message: "resume snapshot is nil"}
	}
	if job == nil {
		return nil, &MalformedInputError{Message: "job snapshot is nil"}
	}
	if err := resume.Validate(); err != nil {
		return nil, &MalformedInputError{Message: "resume snapshot failed validation", Cause: err}
	}
	if err := job.Validate(); err != nil {
		return nil, &MalformedInputError{Message: "job snapshot failed validation", Cause: err}
	}
	if len(job.Requirements) == 0 {
		return nil, &EmptyRequirementsError{}
	}

	weighted := Weigh(job.Requirements)
	held := e.resolveUserSkills(resume.Skills)
	outcomes := e.evaluateRequirements(weighted, held)

	overall := score(outcomes)
	matches, gaps := e.partition(outcomes, held)
	recs := e.recommend(gaps, outcomes, overall)

	unresolved := 0
	for _, out := range outcomes {
		if !out.resolution.Resolved {
			unresolved++
		}
	}
	conf := confidence(outcomes)

	return &types.MatchResult{
		Score:           overall,
		Matches:         matches,
		Gaps:            gaps,
		Recommendations: recs,
		OverallFeedback: overallFeedback(overall, len(matches), len(outcomes), unresolved, conf),
		Confidence:      conf,
	}, nil
}
