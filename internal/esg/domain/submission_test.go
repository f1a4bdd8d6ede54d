package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submissionSchema(t *testing.T, fields ...Field) map[string]Field {
	t.Helper()
	byName, err := FieldsByName(fields)
	require.NoError(t, err)
	return byName
}

func TestBuildSubmissionEndToEnd(t *testing.T) {
	period, err := ParseReportingPeriod("2025-09-21")
	require.NoError(t, err)

	records, err := BuildSubmission(SubmissionInput{
		CompanyID:       1,
		ReportingPeriod: period,
		Method:          MethodInput,
		Values:          map[string]any{"SOC-01": "45"},
		KPIFlags:        map[string]bool{},
		SchemaByName: submissionSchema(t, Field{
			Name:     "SOC-01",
			Type:     FieldTypeNumeric,
			Method:   MethodInput,
			Category: "Social",
			Theme:    "Workforce",
		}),
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	record := records[0]
	assert.Equal(t, CompanyID(1), record.CompanyID)
	assert.Equal(t, "2025-09-21", record.ReportingPeriod.String())
	assert.Equal(t, "SOC-01", record.FormField)
	assert.Equal(t, float64(45), record.FieldValue)
	assert.False(t, record.IsKPI)
	assert.Equal(t, MethodInput, record.Methodology)
}

func TestBuildSubmissionSkipsEmptyValues(t *testing.T) {
	period, _ := ParseReportingPeriod("2025-01-01")
	schema := submissionSchema(t,
		Field{Name: "A", Type: FieldTypeNumeric, Method: MethodInput},
		Field{Name: "B", Type: FieldTypeBoolean, Method: MethodInput},
	)

	_, err := BuildSubmission(SubmissionInput{
		CompanyID:       1,
		ReportingPeriod: period,
		Method:          MethodInput,
		Values:          map[string]any{"A": ""},
		SchemaByName:    schema,
	})
	assert.ErrorIs(t, err, ErrNothingToSubmit)

	records, err := BuildSubmission(SubmissionInput{
		CompanyID:       1,
		ReportingPeriod: period,
		Method:          MethodInput,
		Values:          map[string]any{"B": false},
		SchemaByName:    schema,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "B", records[0].FormField)
	assert.Equal(t, false, records[0].FieldValue)
}

func TestBuildSubmissionReportsValidationFailures(t *testing.T) {
	period, _ := ParseReportingPeriod("2025-01-01")

	_, err := BuildSubmission(SubmissionInput{
		CompanyID:       1,
		ReportingPeriod: period,
		Method:          MethodInput,
		Values:          map[string]any{"A": "-1", "B": "abc"},
		SchemaByName: submissionSchema(t,
			Field{Name: "A", Type: FieldTypeNumeric, Method: MethodInput},
			Field{Name: "B", Type: FieldTypeNumeric, Method: MethodInput},
		),
	})

	var failures ValidationErrors
	require.ErrorAs(t, err, &failures)
	assert.Equal(t, "negative values are not allowed", failures["A"])
	assert.Equal(t, "must be a number", failures["B"])
}

func TestBuildSubmissionMethodologyFollowsWorkflow(t *testing.T) {
	period, _ := ParseReportingPeriod("2025-01-01")

	records, err := BuildSubmission(SubmissionInput{
		CompanyID:       3,
		ReportingPeriod: period,
		Method:          MethodKPI,
		Values:          map[string]any{"KPI-01": "80"},
		KPIFlags:        map[string]bool{"KPI-01": true},
		SchemaByName: submissionSchema(t,
			Field{Name: "KPI-01", Type: FieldTypeNumeric, Method: MethodKPI},
		),
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, MethodKPI, records[0].Methodology)
	assert.True(t, records[0].IsKPI)
}

func TestBuildSubmissionUnknownFieldPassesAsText(t *testing.T) {
	period, _ := ParseReportingPeriod("2025-01-01")

	records, err := BuildSubmission(SubmissionInput{
		CompanyID:       1,
		ReportingPeriod: period,
		Method:          MethodInput,
		Values:          map[string]any{"UNDECLARED": "note"},
		SchemaByName:    map[string]Field{},
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "note", records[0].FieldValue)
}

func TestBuildSubmissionCoercesEnumerated(t *testing.T) {
	period, _ := ParseReportingPeriod("2025-01-01")

	records, err := BuildSubmission(SubmissionInput{
		CompanyID:       1,
		ReportingPeriod: period,
		Method:          MethodInput,
		Values:          map[string]any{"GOV-02": "disclosed"},
		SchemaByName: submissionSchema(t, Field{
			Name:       "GOV-02",
			Type:       FieldTypeEnumerated,
			Method:     MethodInput,
			Constraint: Constraint{Pattern: "^(disclosed|not_disclosed)$"},
		}),
	})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "disclosed", records[0].FieldValue)
}
