package types

import "fmt"

// Proficiency is an ordered competency level for a skill.
type Proficiency string

// Proficiency tiers, lowest to highest.
const (
	ProficiencyBeginner     Proficiency = "beginner"
	ProficiencyIntermediate Proficiency = "intermediate"
	ProficiencyAdvanced     Proficiency = "advanced"
	ProficiencyExpert       Proficiency = "expert"
)

var proficiencyRank = map[Proficiency]int{
	ProficiencyBeginner:     1,
	ProficiencyIntermediate: 2,
	ProficiencyAdvanced:     3,
	ProficiencyExpert:       4,
}

// Rank returns the ordinal position of the tier (beginner=1 .. expert=4),
// or 0 for an unknown value.
func (p Proficiency) Rank() int {
	return proficiencyRank[p]
}

// Valid reports whether p is one of the defined tiers.
func (p Proficiency) Valid() bool {
	return proficiencyRank[p] != 0
}

// AtLeast reports whether p meets or exceeds min.
func (p Proficiency) AtLeast(min Proficiency) bool {
	return p.Rank() >= min.Rank()
}

// ParseProficiency converts a string to a Proficiency, rejecting unknown values.
func ParseProficiency(s string) (Proficiency, error) {
	p := Proficiency(s)
	if !p.Valid() {
		return "", fmt.Errorf("unknown proficiency %q", s)
	}
	return p, nil
}

// Importance is an ordered requirement priority tier.
type Importance string

// Importance tiers, lowest to highest.
const (
	ImportanceNiceToHave Importance = "nice_to_have"
	ImportanceImportant  Importance = "important"
	ImportanceRequired   Importance = "required"
	ImportanceCritical   Importance = "critical"
)

var importanceRank = map[Importance]int{
	ImportanceNiceToHave: 1,
	ImportanceImportant:  2,
	ImportanceRequired:   3,
	ImportanceCritical:   4,
}

// Rank returns the ordinal position of the tier (nice_to_have=1 .. critical=4),
// or 0 for an unknown value.
func (i Importance) Rank() int {
	return importanceRank[i]
}

// Valid reports whether i is one of the defined tiers.
func (i Importance) Valid() bool {
	return importanceRank[i] != 0
}

// AtLeast reports whether i meets or exceeds min.
func (i Importance) AtLeast(min Importance) bool {
	return i.Rank() >= min.Rank()
}

// ParseImportance converts a string to an Importance, rejecting unknown values.
func ParseImportance(s string) (Importance, error) {
	i := Importance(s)
	if !i.Valid() {
		return "", fmt.Errorf("unknown importance %q", s)
	}
	return i, nil
}

// RecommendationType classifies an improvement recommendation.
type RecommendationType string

// Recommendation types.
const (
	RecommendationKeywordOptimization RecommendationType = "keyword_optimization"
	RecommendationSkillHighlighting   RecommendationType = "skill_highlighting"
	RecommendationExperienceEmphasis  RecommendationType = "experience_emphasis"
	RecommendationFormatImprovement   RecommendationType = "format_improvement"
	RecommendationContentEnhancement  RecommendationType = "content_enhancement"
)

// Impact grades how much a recommendation is expected to move the match score.
type Impact string

// Impact grades, lowest to highest.
const (
	ImpactLow      Impact = "low"
	ImpactMedium   Impact = "medium"
	ImpactHigh     Impact = "high"
	ImpactCritical Impact = "critical"
)

var impactRank = map[Impact]int{
	ImpactLow:      1,
	ImpactMedium:   2,
	ImpactHigh:     3,
	ImpactCritical: 4,
}

// Rank returns the ordinal position of the grade (low=1 .. critical=4).
func (i Impact) Rank() int {
	return impactRank[i]
}

// Effort grades how much work a recommendation demands from the candidate.
type Effort string

// Effort grades, lowest to highest.
const (
	EffortMinimal Effort = "minimal"
	EffortLow     Effort = "low"
	EffortMedium  Effort = "medium"
	EffortHigh    Effort = "high"
)

var effortRank = map[Effort]int{
	EffortMinimal: 1,
	EffortLow:     2,
	EffortMedium:  3,
	EffortHigh:    4,
}

// Rank returns the ordinal position of the grade (minimal=1 .. high=4).
func (e Effort) Rank() int {
	return effortRank[e]
}

// Confidence qualifies how much of the job's requirement text the normalizer
// could resolve, and therefore how much to trust the score.
type Confidence string

// Confidence levels.
const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)
