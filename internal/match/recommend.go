package match

import (
	"fmt"
	"sort"

	"github.com/jonathan/match-engine/internal/types"
)

// lowScoreThreshold triggers the broad keyword-alignment recommendation.
const lowScoreThreshold = 0.4

// recommend turns gaps and weak matches into typed, ranked recommendations.
// Each gap or match fires at most one rule; a low overall score additionally
// emits a single broad format-improvement item. Output is ordered by impact
// descending, then effort ascending, so high-impact/low-effort items surface
// first.
func (e *Engine) recommend(
	gaps []types.SkillGap,
	outcomes []requirementOutcome,
	overall float64,
) []types.Recommendation {
	recs := make([]types.Recommendation, 0, len(gaps)+2)

	for _, gap := range gaps {
		recs = append(recs, e.gapRecommendation(gap))
	}

	for _, out := range outcomes {
		if out.profFactor > 0 && out.profFactor < 1 {
			recs = append(recs, types.Recommendation{
				Type:   types.RecommendationExperienceEmphasis,
				Impact: types.ImpactMedium,
				Effort: types.EffortMedium,
				Suggestion: fmt.Sprintf(
					"Your %s proficiency is one tier below the %s bar for %s. Emphasize concrete %s accomplishments to close the gap.",
					out.user.Proficiency, out.weighted.Requirement.MinProficiency, out.displayName(), out.displayName(),
				),
			})
		}
	}

	if overall < lowScoreThreshold {
		recs = append(recs, types.Recommendation{
			Type:   types.RecommendationFormatImprovement,
			Impact: types.ImpactHigh,
			Effort: types.EffortLow,
			Suggestion: "Overall alignment is low. Mirror the job posting's terminology across your skills " +
				"and experience sections so screening picks up the overlap you do have.",
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Impact.Rank() != recs[j].Impact.Rank() {
			return recs[i].Impact.Rank() > recs[j].Impact.Rank()
		}
		return recs[i].Effort.Rank() < recs[j].Effort.Rank()
	})
	return recs
}

// gapRecommendation applies the first matching rule for a single gap.
func (e *Engine) gapRecommendation(gap types.SkillGap) types.Recommendation {
	hard := gap.Importance.AtLeast(types.ImportanceRequired)

	switch {
	case hard && len(gap.AlternativeSkills) == 0:
		impact := types.ImpactHigh
		if gap.Importance == types.ImportanceCritical {
			impact = types.ImpactCritical
		}
		return types.Recommendation{
			Type:   types.RecommendationSkillHighlighting,
			Impact: impact,
			Effort: types.EffortHigh,
			Suggestion: fmt.Sprintf(
				"%s is a %s requirement and is missing from your résumé. Add evidence of %s, or plan to build it before applying.",
				gap.Name, gap.Importance, gap.Name,
			),
		}

	case hard:
		alt := e.displayNameFor(gap.AlternativeSkills[0])
		return types.Recommendation{
			Type:   types.RecommendationContentEnhancement,
			Impact: types.ImpactMedium,
			Effort: types.EffortLow,
			Suggestion: fmt.Sprintf(
				"You lack %s but already have %s. Emphasize your %s work as directly transferable.",
				gap.Name, alt, alt,
			),
			Examples: []string{
				fmt.Sprintf("Position %s projects next to the posting's %s requirement.", alt, gap.Name),
			},
		}

	default:
		return types.Recommendation{
			Type:   types.RecommendationKeywordOptimization,
			Impact: types.ImpactLow,
			Effort: types.EffortMinimal,
			Suggestion: fmt.Sprintf(
				"%s is a %s requirement. Weave the keyword into an existing bullet if you have touched it at all.",
				gap.Name, gap.Importance,
			),
		}
	}
}

func (e *Engine) displayNameFor(skillID string) string {
	if s, ok := e.cat.Skill(skillID); ok {
		return s.Name
	}
	return skillID
}
