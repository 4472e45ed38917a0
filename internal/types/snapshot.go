package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// UserSkill is one skill claimed on a résumé: the raw skill text as written,
// a proficiency tier, and years of hands-on experience.
type UserSkill struct {
	Skill       string      `json:"skill" validate:"required,min=1"`
	Proficiency Proficiency `json:"proficiency" validate:"required"`
	Years       float64     `json:"years" validate:"gte=0"`
	LastUsed    *time.Time  `json:"last_used,omitempty"`
}

// JobRequirement is one requirement from a job posting, in posting order.
// Skill text is raw; it is resolved against the catalog at evaluation time.
type JobRequirement struct {
	Skill          string      `json:"skill" validate:"required,min=1"`
	Importance     Importance  `json:"importance" validate:"required"`
	MinProficiency Proficiency `json:"min_proficiency" validate:"required"`
	Preferred      bool        `json:"preferred,omitempty"`
}

// ResumeSnapshot is the minimal résumé projection the engine needs.
// The caller owns fetching and parsing; the engine never reads storage.
type ResumeSnapshot struct {
	Skills []UserSkill `json:"skills" validate:"dive"`
}

// JobSnapshot is the minimal job projection the engine needs.
// Requirements keep the order in which the posting listed them; that order
// feeds the position-decay weighting.
type JobSnapshot struct {
	Requirements []JobRequirement `json:"requirements" validate:"dive"`
}

// Validate checks the snapshot's structural shape using the validator,
// plus enum values the validator tags cannot express.
func (r *ResumeSnapshot) Validate() error {
	validate := validator.New()
	if err := validate.Struct(r); err != nil {
		return err
	}
	for _, s := range r.Skills {
		if !s.Proficiency.Valid() {
			return &EnumError{Field: "skills.proficiency", Value: string(s.Proficiency)}
		}
	}
	return nil
}

// Validate checks the snapshot's structural shape using the validator,
// plus enum values the validator tags cannot express.
func (j *JobSnapshot) Validate() error {
	validate := validator.New()
	if err := validate.Struct(j); err != nil {
		return err
	}
	for _, req := range j.Requirements {
		if !req.Importance.Valid() {
			return &EnumError{Field: "requirements.importance", Value: string(req.Importance)}
		}
		if !req.MinProficiency.Valid() {
			return &EnumError{Field: "requirements.min_proficiency", Value: string(req.MinProficiency)}
		}
	}
	return nil
}

// EnumError reports a field carrying a value outside its defined enum.
type EnumError struct {
	Field string
	Value string
}

func (e *EnumError) Error() string {
	return "invalid value " + e.Value + " for field " + e.Field
}
