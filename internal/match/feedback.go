package match

import (
	"fmt"

	"github.com/jonathan/match-engine/internal/types"
)

// Confidence thresholds on the fraction of requirement strings the
// normalizer could resolve.
const (
	confidenceHighMin   = 0.85
	confidenceMediumMin = 0.5
)

// confidence derives the trust level for a result from how many of the
// job's requirement strings resolved against the catalog.
func confidence(outcomes []requirementOutcome) types.Confidence {
	resolved := 0
	for _, out := range outcomes {
		if out.resolution.Resolved {
			resolved++
		}
	}
	frac := float64(resolved) / float64(len(outcomes))
	switch {
	case frac >= confidenceHighMin:
		return types.ConfidenceHigh
	case frac >= confidenceMediumMin:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}

// overallFeedback builds the deterministic one-paragraph summary attached to
// a result.
func overallFeedback(score float64, matched, total, unresolved int, conf types.Confidence) string {
	var tone string
	switch {
	case score >= 0.8:
		tone = "Strong match"
	case score >= 0.6:
		tone = "Good match"
	case score >= 0.4:
		tone = "Partial match"
	default:
		tone = "Weak match"
	}

	text := fmt.Sprintf("%s: you cover %d of %d requirements for a score of %.0f%%.",
		tone, matched, total, score*100)

	if unresolved > 0 {
		text += fmt.Sprintf(" %d requirement(s) could not be recognized and limit the achievable score.", unresolved)
	}
	if conf == types.ConfidenceLow {
		text += " Treat this score with caution; much of the posting's requirement text did not resolve."
	}
	return text
}
