package match

import "github.com/jonathan/match-engine/internal/types"

// Base weight per importance tier.
const (
	weightNiceToHave = 1.0
	weightImportant  = 2.0
	weightRequired   = 4.0
	weightCritical   = 8.0
)

// Position decay: each later slot in the requirement list loses 2% of base
// weight, floored at half the base so a late-listed critical skill is never
// over-penalized.
const (
	positionDecayPerSlot = 0.02
	positionDecayFloor   = 0.5
)

// WeightedRequirement is a job requirement with its normalized contribution
// share. Weights across one job sum to 1.0.
type WeightedRequirement struct {
	Requirement types.JobRequirement
	Index       int // 0-based position in the posting's requirement list
	Weight      float64
}

// Weigh assigns every requirement a relative contribution share from its
// importance tier and list position. The returned slice preserves input
// order. Returns nil for an empty requirement list.
func Weigh(requirements []types.JobRequirement) []WeightedRequirement {
	if len(requirements) == 0 {
		return nil
	}

	weighted := make([]WeightedRequirement, len(requirements))
	total := 0.0
	for i, req := range requirements {
		base := baseWeight(req.Importance)
		decay := 1.0 - positionDecayPerSlot*float64(i)
		if decay < positionDecayFloor {
			decay = positionDecayFloor
		}
		w := base * decay
		weighted[i] = WeightedRequirement{Requirement: req, Index: i, Weight: w}
		total += w
	}

	for i := range weighted {
		weighted[i].Weight /= total
	}
	return weighted
}

func baseWeight(importance types.Importance) float64 {
	switch importance {
	case types.ImportanceCritical:
		return weightCritical
	case types.ImportanceRequired:
		return weightRequired
	case types.ImportanceImportant:
		return weightImportant
	default:
		return weightNiceToHave
	}
}
