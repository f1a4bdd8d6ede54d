package internal

import (
	"fmt"
	"strconv"
	"time"

	"esg-server/internal/esg/domain"
)

// SchemaField is the backend's wire shape for one field definition.
// Enumerated fields arrive with type "regex" and the option set encoded in
// the pattern's alternation group.
type SchemaField struct {
	Name      string   `json:"name"`
	Label     string   `json:"label"`
	Type      string   `json:"type"`
	Method    string   `json:"method"`
	Category  string   `json:"category"`
	Theme     string   `json:"theme"`
	Unit      string   `json:"unit,omitempty"`
	Reference string   `json:"reference,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
}

func (s SchemaField) ToDomain() (domain.Field, error) {
	fieldType, err := domain.NormalizeFieldType(s.Type)
	if err != nil {
		return domain.Field{}, fmt.Errorf("field %s: %w", s.Name, err)
	}
	method, err := domain.ParseMethod(s.Method)
	if err != nil {
		return domain.Field{}, fmt.Errorf("field %s: %w", s.Name, err)
	}

	return domain.Field{
		Name:      s.Name,
		Label:     s.Label,
		Type:      fieldType,
		Method:    method,
		Category:  s.Category,
		Theme:     s.Theme,
		Unit:      s.Unit,
		Reference: s.Reference,
		Constraint: domain.Constraint{
			Min:     s.Min,
			Max:     s.Max,
			Pattern: s.Pattern,
		},
	}, nil
}

// StoredValue is one row of a current or historic snapshot response.
type StoredValue struct {
	FormField       string `json:"form_field"`
	FieldValue      any    `json:"field_value"`
	ReportingPeriod string `json:"reporting_period"`
}

// ToSnapshot reduces backend rows to the engine's per-field view. Later rows
// win on duplicated field names, matching the backend's ordering by recency.
func ToSnapshot(rows []StoredValue) domain.Snapshot {
	snapshot := make(domain.Snapshot, len(rows))
	for _, row := range rows {
		snapshot[row.FormField] = domain.SnapshotEntry{
			Value:           FieldValueString(row.FieldValue),
			ReportingPeriod: row.ReportingPeriod,
		}
	}
	return snapshot
}

// FieldValueString renders a typed field value the way the form displays it.
func FieldValueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// SubmissionEntry is one element of the batch POST body.
type SubmissionEntry struct {
	CompanyID       int    `json:"company_id"`
	ReportingPeriod string `json:"reporting_period"`
	FormField       string `json:"form_field"`
	FieldValue      any    `json:"field_value"`
	IsKPI           bool   `json:"is_kpi"`
	Methodology     string `json:"methodology"`
}

func SubmissionEntryFromDomain(r domain.SubmissionRecord) SubmissionEntry {
	return SubmissionEntry{
		CompanyID:       r.CompanyID.Int(),
		ReportingPeriod: r.ReportingPeriod.String(),
		FormField:       r.FormField,
		FieldValue:      r.FieldValue,
		IsKPI:           r.IsKPI,
		Methodology:     string(r.Methodology),
	}
}

type ScoreRunRequest struct {
	CompanyID       int    `json:"company_id"`
	ReportingPeriod string `json:"reporting_period"`
}

type ScoreRunResponse struct {
	PillarScores map[string]float64 `json:"pillar_scores"`
	FinalScore   float64            `json:"final_score"`
}

func (s ScoreRunResponse) ToDomain() domain.ScoreReport {
	return domain.ScoreReport{
		PillarScores: s.PillarScores,
		FinalScore:   s.FinalScore,
	}
}

// FormSubmission is the sqlite row of the local backend. The latest value
// per (company, period, field, methodology) carries is_current=true; prior
// rows stay as history.
type FormSubmission struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	CompanyID       int       `json:"company_id" gorm:"index"`
	ReportingPeriod string    `json:"reporting_period"`
	FormField       string    `json:"form_field"`
	FieldValue      string    `json:"field_value"`
	IsKPI           bool      `json:"is_kpi" gorm:"column:is_kpi"`
	Methodology     string    `json:"methodology"`
	IsCurrent       bool      `json:"is_current" gorm:"index"`
	CreatedAt       time.Time `json:"created_at"`
}

func (FormSubmission) TableName() string {
	return "form_submissions"
}

func (s FormSubmission) ToStoredValue() StoredValue {
	return StoredValue{
		FormField:       s.FormField,
		FieldValue:      s.FieldValue,
		ReportingPeriod: s.ReportingPeriod,
	}
}
