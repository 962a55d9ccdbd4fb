package models

import (
	"database/sql/driver"
	"time"
)

// SurveyAudience discriminates the three survey variants.
type SurveyAudience string

const (
	SurveyAudienceParent  SurveyAudience = "parent"
	SurveyAudienceStaff   SurveyAudience = "staff"
	SurveyAudienceStudent SurveyAudience = "student"
)

// SurveyAnswers holds the submitted responses verbatim as jsonb. The three
// audiences share rating-scale semantics but differ in question sets, so the
// answers stay schemaless the way the site submitted them.
type SurveyAnswers map[string]interface{}

func (a SurveyAnswers) Value() (driver.Value, error) { return jsonbValue(a) }

func (a *SurveyAnswers) Scan(src interface{}) error { return jsonbScan(src, a) }

// Survey is one submitted feedback form.
type Survey struct {
	ID          string         `db:"id" json:"id"`
	Audience    SurveyAudience `db:"audience" json:"audience"`
	Name        string         `db:"name" json:"name"`
	Answers     SurveyAnswers  `db:"answers" json:"answers"`
	Suggestions string         `db:"suggestions" json:"suggestions,omitempty"`
	SubmittedAt time.Time      `db:"submitted_at" json:"submittedAt"`
}
