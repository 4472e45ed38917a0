package types

// SkillMatch is a job requirement the candidate satisfies, fully or partly.
type SkillMatch struct {
	SkillID          string  `json:"skill_id"`
	Name             string  `json:"name"`
	Relevance        float64 `json:"relevance"` // normalized weight x proficiency factor
	ProficiencyMatch bool    `json:"proficiency_match"`
}

// SkillGap is a job requirement the candidate does not satisfy, with
// substitutable skills the candidate already holds (at most five).
type SkillGap struct {
	SkillID           string     `json:"skill_id"`
	Name              string     `json:"name"`
	Importance        Importance `json:"importance"`
	AlternativeSkills []string   `json:"alternative_skills"`
}

// Recommendation is one typed, ranked improvement suggestion.
type Recommendation struct {
	Type       RecommendationType `json:"type"`
	Impact     Impact             `json:"impact"`
	Effort     Effort             `json:"effort"`
	Suggestion string             `json:"suggestion"`
	Examples   []string           `json:"examples,omitempty"`
}

// MatchResult is the full outcome of evaluating one résumé against one job.
// It is plain data, safe to serialize directly.
//
// Matches and Gaps together cover every job requirement exactly once.
// Gaps are ordered highest importance first; Recommendations are ordered
// highest impact first with lower effort winning ties.
type MatchResult struct {
	Score           float64          `json:"score"`
	Matches         []SkillMatch     `json:"matches"`
	Gaps            []SkillGap       `json:"gaps"`
	Recommendations []Recommendation `json:"recommendations"`
	OverallFeedback string           `json:"overall_feedback"`
	Confidence      Confidence       `json:"confidence"`
}
