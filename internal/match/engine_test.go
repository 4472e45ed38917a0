package match

import (
	"testing"

	"github.com/jonathan/match-engine/internal/catalog"
	"github.com/jonathan/match-engine/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return New(cat)
}

func resume(skills ...types.UserSkill) *types.ResumeSnapshot {
	return &types.ResumeSnapshot{Skills: skills}
}

func job(reqs ...types.JobRequirement) *types.JobSnapshot {
	return &types.JobSnapshot{Requirements: reqs}
}

func TestEvaluateMatch_PerfectSingleRequirement(t *testing.T) {
	e := testEngine(t)

	result, err := e.EvaluateMatch(
		resume(types.UserSkill{Skill: "React", Proficiency: types.ProficiencyExpert, Years: 5}),
		job(types.JobRequirement{Skill: "React", Importance: types.ImportanceRequired, MinProficiency: types.ProficiencyAdvanced}),
	)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, result.Score, 1e-9)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "react", result.Matches[0].SkillID)
	assert.True(t, result.Matches[0].ProficiencyMatch)
	assert.Empty(t, result.Gaps)
	assert.Empty(t, result.Recommendations)
	assert.Equal(t, types.ConfidenceHigh, result.Confidence)
}

func TestEvaluateMatch_CriticalGapWithoutAlternatives(t *testing.T) {
	e := testEngine(t)

	result, err := e.EvaluateMatch(
		resume(types.UserSkill{Skill: "Java", Proficiency: types.ProficiencyAdvanced, Years: 6}),
		job(types.JobRequirement{Skill: "GraphQL", Importance: types.ImportanceCritical, MinProficiency: types.ProficiencyIntermediate}),
	)
	require.NoError(t, err)

	assert.Zero(t, result.Score)
	assert.Empty(t, result.Matches)
	require.Len(t, result.Gaps, 1)
	assert.Equal(t, "graphql", result.Gaps[0].SkillID)
	assert.Empty(t, result.Gaps[0].AlternativeSkills)

	require.NotEmpty(t, result.Recommendations)
	first := result.Recommendations[0]
	assert.Equal(t, types.RecommendationSkillHighlighting, first.Type)
	assert.Equal(t, types.ImpactCritical, first.Impact)
}

func TestEvaluateMatch_EmptyRequirementsIsTypedError(t *testing.T) {
	e := testEngine(t)

	_, err := e.EvaluateMatch(
		resume(types.UserSkill{Skill: "Go", Proficiency: types.ProficiencyAdvanced, Years: 3}),
		job(),
	)

	var emptyErr *EmptyRequirementsError
	require.ErrorAs(t, err, &emptyErr)
}

func TestEvaluateMatch_EmptySkillsIsValidZeroScore(t *testing.T) {
	e := testEngine(t)

	result, err := e.EvaluateMatch(
		resume(),
		job(
			types.JobRequirement{Skill: "Go", Importance: types.ImportanceRequired, MinProficiency: types.ProficiencyIntermediate},
			types.JobRequirement{Skill: "Docker", Importance: types.ImportanceImportant, MinProficiency: types.ProficiencyBeginner},
			types.JobRequirement{Skill: "AWS", Importance: types.ImportanceNiceToHave, MinProficiency: types.ProficiencyBeginner},
		),
	)
	require.NoError(t, err)

	assert.Zero(t, result.Score)
	assert.Empty(t, result.Matches)
	assert.Len(t, result.Gaps, 3)
}

func TestEvaluateMatch_NilAndMalformedInputs(t *testing.T) {
	e := testEngine(t)
	validJob := job(types.JobRequirement{Skill: "Go", Importance: types.ImportanceRequired, MinProficiency: types.ProficiencyIntermediate})

	var malformed *MalformedInputError

	_, err := e.EvaluateMatch(nil, validJob)
	require.ErrorAs(t, err, &malformed)

	_, err = e.EvaluateMatch(resume(), nil)
	require.ErrorAs(t, err, &malformed)

	// Requirement with no skill text.
	_, err = e.EvaluateMatch(resume(), job(types.JobRequirement{Importance: types.ImportanceRequired, MinProficiency: types.ProficiencyIntermediate}))
	require.ErrorAs(t, err, &malformed)

	// Negative years of experience.
	_, err = e.EvaluateMatch(
		resume(types.UserSkill{Skill: "Go", Proficiency: types.ProficiencyAdvanced, Years: -1}),
		validJob,
	)
	require.ErrorAs(t, err, &malformed)

	// Importance outside the enum.
	_, err = e.EvaluateMatch(resume(), job(types.JobRequirement{Skill: "Go", Importance: "mandatory", MinProficiency: types.ProficiencyIntermediate}))
	require.ErrorAs(t, err, &malformed)
}

func TestEvaluateMatch_ScoreAlwaysInRange(t *testing.T) {
	e := testEngine(t)

	resumes := []*types.ResumeSnapshot{
		resume(),
		resume(types.UserSkill{Skill: "Go", Proficiency: types.ProficiencyExpert, Years: 15}),
		resume(
			types.UserSkill{Skill: "React", Proficiency: types.ProficiencyBeginner, Years: 0.5},
			types.UserSkill{Skill: "Python", Proficiency: types.ProficiencyAdvanced, Years: 8},
		),
	}
	jobs := []*types.JobSnapshot{
		job(types.JobRequirement{Skill: "Go", Importance: types.ImportanceCritical, MinProficiency: types.ProficiencyExpert}),
		job(
			types.JobRequirement{Skill: "React", Importance: types.ImportanceRequired, MinProficiency: types.ProficiencyAdvanced},
			types.JobRequirement{Skill: "zzznonsense", Importance: types.ImportanceCritical, MinProficiency: types.ProficiencyBeginner},
			types.JobRequirement{Skill: "Python", Importance: types.ImportanceNiceToHave, MinProficiency: types.ProficiencyIntermediate},
		),
	}

	for _, r := range resumes {
		for _, j := range jobs {
			result, err := e.EvaluateMatch(r, j)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, result.Score, 0.0)
			assert.LessOrEqual(t, result.Score, 1.0)
		}
	}
}

func TestEvaluateMatch_CompletenessInvariant(t *testing.T) {
	e := testEngine(t)

	j := job(
		types.JobRequirement{Skill: "Go", Importance: types.ImportanceCritical, MinProficiency: types.ProficiencyAdvanced},
		types.JobRequirement{Skill: "garbledxyz", Importance: types.ImportanceRequired, MinProficiency: types.ProficiencyBeginner},
		types.JobRequirement{Skill: "Docker", Importance: types.ImportanceImportant, MinProficiency: types.ProficiencyIntermediate},
		types.JobRequirement{Skill: "AWS", Importance: types.ImportanceNiceToHave, MinProficiency: types.ProficiencyBeginner},
	)
	r := resume(
		types.UserSkill{Skill: "golang", Proficiency: types.ProficiencyExpert, Years: 7},
		types.UserSkill{Skill: "Docker", Proficiency: types.ProficiencyIntermediate, Years: 3},
	)

	result, err := e.EvaluateMatch(r, j)
	require.NoError(t, err)

	assert.Equal(t, len(j.Requirements), len(result.Matches)+len(result.Gaps),
		"every requirement must be classified exactly once")

	seen := map[string]int{}
	for _, m := range result.Matches {
		seen[m.SkillID]++
	}
	for _, g := range result.Gaps {
		seen[g.SkillID]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "skill %s classified more than once", id)
	}
}

func TestEvaluateMatch_Deterministic(t *testing.T) {
	e := testEngine(t)

	r := resume(
		types.UserSkill{Skill: "React", Proficiency: types.ProficiencyIntermediate, Years: 2},
		types.UserSkill{Skill: "TypeScript", Proficiency: types.ProficiencyAdvanced, Years: 4},
	)
	j := job(
		types.JobRequirement{Skill: "React", Importance: types.ImportanceCritical, MinProficiency: types.ProficiencyAdvanced},
		types.JobRequirement{Skill: "Vue", Importance: types.ImportanceRequired, MinProficiency: types.ProficiencyIntermediate},
		types.JobRequirement{Skill: "CSS", Importance: types.ImportanceNiceToHave, MinProficiency: types.ProficiencyBeginner},
	)

	first, err := e.EvaluateMatch(r, j)
	require.NoError(t, err)
	second, err := e.EvaluateMatch(r, j)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluateMatch_MonotonicityOnClosingAGap(t *testing.T) {
	e := testEngine(t)

	j := job(
		types.JobRequirement{Skill: "Go", Importance: types.ImportanceRequired, MinProficiency: types.ProficiencyIntermediate},
		types.JobRequirement{Skill: "Kubernetes", Importance: types.ImportanceRequired, MinProficiency: types.ProficiencyIntermediate},
	)

	before, err := e.EvaluateMatch(
		resume(types.UserSkill{Skill: "Go", Proficiency: types.ProficiencyAdvanced, Years: 4}),
		j,
	)
	require.NoError(t, err)
	require.Len(t, before.Gaps, 1)
	require.Equal(t, "kubernetes", before.Gaps[0].SkillID)

	after, err := e.EvaluateMatch(
		resume(
			types.UserSkill{Skill: "Go", Proficiency: types.ProficiencyAdvanced, Years: 4},
			types.UserSkill{Skill: "Kubernetes", Proficiency: types.ProficiencyAdvanced, Years: 2},
		),
		j,
	)
	require.NoError(t, err)

	assert.Greater(t, after.Score, before.Score)
	assert.Empty(t, after.Gaps)
}

func TestEvaluateMatch_UnresolvedRequirementReducesConfidence(t *testing.T) {
	e := testEngine(t)

	result, err := e.EvaluateMatch(
		resume(types.UserSkill{Skill: "React", Proficiency: types.ProficiencyAdvanced, Years: 4}),
		job(
			types.JobRequirement{Skill: "React", Importance: types.ImportanceRequired, MinProficiency: types.ProficiencyIntermediate},
			types.JobRequirement{Skill: "xqzwv", Importance: types.ImportanceImportant, MinProficiency: types.ProficiencyBeginner},
		),
	)
	require.NoError(t, err)

	// The resolved requirement still contributes normally.
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "react", result.Matches[0].SkillID)
	assert.Greater(t, result.Score, 0.0)
	assert.Less(t, result.Score, 1.0, "unresolved weight must stay in the denominator")

	// One of two requirement strings resolved -> medium confidence.
	assert.Equal(t, types.ConfidenceMedium, result.Confidence)
	assert.Contains(t, result.OverallFeedback, "could not be recognized")

	// The unresolved requirement is a gap keyed by its folded text.
	require.Len(t, result.Gaps, 1)
	assert.Equal(t, "xqzwv", result.Gaps[0].SkillID)
}

func TestEvaluateMatch_ExperienceBonusOnHighBarSkills(t *testing.T) {
	e := testEngine(t)
	j := job(types.JobRequirement{Skill: "Go", Importance: types.ImportanceRequired, MinProficiency: types.ProficiencyExpert})

	// Expert with 1 year: factor 1.0 * (0.7 + 0.1) = 0.8.
	shallow, err := e.EvaluateMatch(
		resume(types.UserSkill{Skill: "Go", Proficiency: types.ProficiencyExpert, Years: 1}),
		j,
	)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, shallow.Score, 1e-9)

	// Expert with 3+ years: multiplier capped at 1.0.
	deep, err := e.EvaluateMatch(
		resume(types.UserSkill{Skill: "Go", Proficiency: types.ProficiencyExpert, Years: 3}),
		j,
	)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, deep.Score, 1e-9)
}

func TestEvaluateMatch_NoExperienceBonusBelowAdvancedBar(t *testing.T) {
	e := testEngine(t)

	// Intermediate bar: years must not matter.
	j := job(types.JobRequirement{Skill: "Go", Importance: types.ImportanceRequired, MinProficiency: types.ProficiencyIntermediate})

	result, err := e.EvaluateMatch(
		resume(types.UserSkill{Skill: "Go", Proficiency: types.ProficiencyIntermediate, Years: 0}),
		j,
	)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, result.Score, 1e-9)
}
