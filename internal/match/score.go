package match

import (
	"github.com/jonathan/match-engine/internal/normalize"
	"github.com/jonathan/match-engine/internal/types"
)

// Proficiency factor tiers: full credit at or above the bar, half credit
// exactly one tier below, nothing further down.
const (
	factorFull    = 1.0
	factorOneBelow = 0.5
)

// Experience multiplier for requirements with an advanced/expert bar:
// min(1.0, expBonusBase + expBonusPerYear * years). Capped at 1.0 so depth
// can restore but never exceed the full proficiency factor.
const (
	expBonusBase    = 0.7
	expBonusPerYear = 0.1
)

// requirementOutcome is the per-requirement evaluation record shared by the
// scorer, the gap analyzer, and the recommendation generator.
type requirementOutcome struct {
	weighted   WeightedRequirement
	resolution normalize.Resolution
	user       *types.UserSkill // matching user skill, nil when none
	profFactor float64          // proficiency factor, before experience bonus
	effFactor  float64          // factor actually contributed to the score
	profMet    bool             // user proficiency >= requirement minimum
}

func (o *requirementOutcome) matched() bool {
	return o.profFactor > 0
}

// skillID returns the identifier used in matches and gaps: the canonical ID
// when resolved, the folded raw text otherwise.
func (o *requirementOutcome) skillID() string {
	if o.resolution.Resolved {
		return o.resolution.SkillID
	}
	return o.resolution.Folded
}

// displayName returns the canonical display name when resolved, the raw
// posting text otherwise.
func (o *requirementOutcome) displayName() string {
	if o.resolution.Resolved {
		return o.resolution.Name
	}
	return o.weighted.Requirement.Skill
}

// evaluateRequirements resolves each weighted requirement and computes its
// proficiency and contribution factors against the user's skills.
// Unresolved requirements keep their weight (they stay in the score
// denominator) but can never contribute to the numerator.
func (e *Engine) evaluateRequirements(
	weighted []WeightedRequirement,
	held map[string]*types.UserSkill,
) []requirementOutcome {
	outcomes := make([]requirementOutcome, len(weighted))
	for i, wr := range weighted {
		out := requirementOutcome{
			weighted:   wr,
			resolution: e.norm.Normalize(wr.Requirement.Skill),
		}
		if out.resolution.Resolved {
			if user, ok := held[out.resolution.SkillID]; ok {
				out.user = user
				out.profFactor = proficiencyFactor(user.Proficiency, wr.Requirement.MinProficiency)
				out.profMet = user.Proficiency.AtLeast(wr.Requirement.MinProficiency)
				out.effFactor = out.profFactor
				if out.profFactor > 0 && highBar(wr.Requirement.MinProficiency) {
					out.effFactor *= experienceMultiplier(user.Years)
				}
			}
		}
		outcomes[i] = out
	}
	return outcomes
}

// score folds outcomes into a single compatibility score in [0, 1].
// The denominator includes unresolved requirements' weight, so a job full of
// garbled requirement text caps the achievable score instead of inflating it.
func score(outcomes []requirementOutcome) float64 {
	num, denom := 0.0, 0.0
	for _, out := range outcomes {
		denom += out.weighted.Weight
		num += out.weighted.Weight * out.effFactor
	}
	if denom == 0 {
		return 0
	}
	s := num / denom
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

func proficiencyFactor(user, min types.Proficiency) float64 {
	switch {
	case user.AtLeast(min):
		return factorFull
	case user.Rank() == min.Rank()-1:
		return factorOneBelow
	default:
		return 0
	}
}

func highBar(min types.Proficiency) bool {
	return min == types.ProficiencyAdvanced || min == types.ProficiencyExpert
}

func experienceMultiplier(years float64) float64 {
	m := expBonusBase + expBonusPerYear*years
	if m > 1 {
		return 1
	}
	return m
}

// resolveUserSkills maps the résumé's skills onto canonical IDs. The first
// occurrence of a canonical skill wins; skill text the catalog cannot
// resolve is skipped (it cannot match any requirement anyway).
func (e *Engine) resolveUserSkills(skills []types.UserSkill) map[string]*types.UserSkill {
	held := make(map[string]*types.UserSkill, len(skills))
	for i := range skills {
		res := e.norm.Normalize(skills[i].Skill)
		if !res.Resolved {
			continue
		}
		if _, exists := held[res.SkillID]; !exists {
			held[res.SkillID] = &skills[i]
		}
	}
	return held
}
