package domain

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// ErrNothingToSubmit signals that no edited field carried a submittable
// value. It is an informational outcome, not a failure.
var ErrNothingToSubmit = errors.New("nothing to submit")

// ValidationErrors maps field names to the reason their value was rejected.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	names := make([]string, 0, len(e))
	for name := range e {
		names = append(names, name)
	}
	sort.Strings(names)
	return "invalid field values: " + strings.Join(names, ", ")
}

// SubmissionRecord is one normalized entry of a submission batch, ready to
// hand to the backend.
type SubmissionRecord struct {
	CompanyID       CompanyID
	ReportingPeriod ReportingPeriod
	FormField       string
	FieldValue      any
	IsKPI           bool
	Methodology     Method
}

// SubmissionInput is the edited state of one form session at submit time.
type SubmissionInput struct {
	CompanyID       CompanyID
	ReportingPeriod ReportingPeriod
	Method          Method
	Values          map[string]any
	KPIFlags        map[string]bool
	SchemaByName    map[string]Field
}

// BuildSubmission turns the edited value set into a typed batch. Untouched
// fields are never considered; edited-but-empty values are skipped rather
// than submitted as empty records. Any value failing its field rule aborts
// the build with ValidationErrors; an all-empty edit set yields
// ErrNothingToSubmit.
func BuildSubmission(in SubmissionInput) ([]SubmissionRecord, error) {
	failures := make(ValidationErrors)
	names := make([]string, 0, len(in.Values))
	for name := range in.Values {
		names = append(names, name)
	}
	sort.Strings(names)

	records := make([]SubmissionRecord, 0, len(names))
	for _, name := range names {
		raw := in.Values[name]
		field, known := in.SchemaByName[name]
		if !known {
			// No schema rule: the value passes through as text, mirroring
			// the backend's own fallback.
			field = Field{Name: name, Type: FieldTypeText}
		}

		if isEmptyValue(field.Type, raw) {
			continue
		}

		if result := ValidateValue(field, raw); !result.Valid {
			failures[name] = result.Reason
			continue
		}

		value, ok := coerceValue(field.Type, raw)
		if !ok {
			// Coercion re-checks what validation already guaranteed; a value
			// slipping through is dropped instead of corrupting the batch.
			continue
		}

		records = append(records, SubmissionRecord{
			CompanyID:       in.CompanyID,
			ReportingPeriod: in.ReportingPeriod,
			FormField:       name,
			FieldValue:      value,
			IsKPI:           in.KPIFlags[name],
			Methodology:     in.Method,
		})
	}

	if len(failures) > 0 {
		return nil, failures
	}
	if len(records) == 0 {
		return nil, ErrNothingToSubmit
	}

	return records, nil
}

func isEmptyValue(fieldType FieldType, raw any) bool {
	if raw == nil {
		return true
	}
	switch fieldType {
	case FieldTypeBoolean:
		if str, ok := raw.(string); ok {
			return str == ""
		}
		return false
	default:
		str, ok := stringValue(raw)
		return ok && str == ""
	}
}

func coerceValue(fieldType FieldType, raw any) (any, bool) {
	switch fieldType {
	case FieldTypeNumeric:
		str, ok := stringValue(raw)
		if !ok {
			return nil, false
		}
		value, err := strconv.ParseFloat(str, 64)
		if err != nil || value < 0 {
			return nil, false
		}
		return value, true
	case FieldTypeBoolean:
		switch v := raw.(type) {
		case bool:
			return v, true
		case string:
			return v == "true", true
		default:
			return nil, false
		}
	default:
		str, ok := stringValue(raw)
		if !ok {
			return nil, false
		}
		return str, true
	}
}
