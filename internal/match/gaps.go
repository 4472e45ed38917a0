package match

import (
	"sort"

	"github.com/jonathan/match-engine/internal/types"
)

// maxAlternatives caps the substitutable skills suggested per gap.
const maxAlternatives = 5

// partition classifies every requirement outcome as a match or a gap.
// Matches keep requirement list order. Gaps are sorted by importance tier
// descending, then original weight descending; the sort is stable so ties
// keep posting order. Together the two lists cover each requirement exactly
// once.
func (e *Engine) partition(
	outcomes []requirementOutcome,
	held map[string]*types.UserSkill,
) ([]types.SkillMatch, []types.SkillGap) {
	matches := make([]types.SkillMatch, 0, len(outcomes))
	gapOutcomes := make([]requirementOutcome, 0, len(outcomes))

	for _, out := range outcomes {
		if out.matched() {
			matches = append(matches, types.SkillMatch{
				SkillID:          out.skillID(),
				Name:             out.displayName(),
				Relevance:        out.weighted.Weight * out.profFactor,
				ProficiencyMatch: out.profMet,
			})
			continue
		}
		gapOutcomes = append(gapOutcomes, out)
	}

	sort.SliceStable(gapOutcomes, func(i, j int) bool {
		gi, gj := gapOutcomes[i], gapOutcomes[j]
		ri := gi.weighted.Requirement.Importance.Rank()
		rj := gj.weighted.Requirement.Importance.Rank()
		if ri != rj {
			return ri > rj
		}
		return gi.weighted.Weight > gj.weighted.Weight
	})

	gaps := make([]types.SkillGap, 0, len(gapOutcomes))
	for _, out := range gapOutcomes {
		gaps = append(gaps, types.SkillGap{
			SkillID:           out.skillID(),
			Name:              out.displayName(),
			Importance:        out.weighted.Requirement.Importance,
			AlternativeSkills: e.alternatives(out, held),
		})
	}
	return matches, gaps
}

// alternatives returns up to maxAlternatives adjacent skills the user
// actually holds, in adjacency-table rank order. Unresolved requirements
// have no catalog entry and therefore no alternatives.
func (e *Engine) alternatives(out requirementOutcome, held map[string]*types.UserSkill) []string {
	alts := []string{}
	if !out.resolution.Resolved {
		return alts
	}
	for _, adj := range e.cat.Adjacent(out.resolution.SkillID) {
		if _, ok := held[adj]; !ok {
			continue
		}
		alts = append(alts, adj)
		if len(alts) == maxAlternatives {
			break
		}
	}
	return alts
}
