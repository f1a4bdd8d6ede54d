package internal

import (
	"esg-server/internal/esg/domain"
	"esg-server/internal/esg/usecases"
)

type FieldResponse struct {
	Name      string   `json:"name"`
	Label     string   `json:"label"`
	Type      string   `json:"type"`
	Method    string   `json:"method"`
	Category  string   `json:"category"`
	Theme     string   `json:"theme"`
	Unit      string   `json:"unit,omitempty"`
	Reference string   `json:"reference,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
	Options   []string `json:"options,omitempty"`
}

type ThemeResponse struct {
	Name   string          `json:"name"`
	Fields []FieldResponse `json:"fields"`
}

type CategoryResponse struct {
	Name   string          `json:"name"`
	Themes []ThemeResponse `json:"themes"`
}

type GroupedSchemaResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

func ToFieldResponse(f domain.Field) FieldResponse {
	return FieldResponse{
		Name:      f.Name,
		Label:     f.Label,
		Type:      string(f.Type),
		Method:    string(f.Method),
		Category:  f.Category,
		Theme:     f.Theme,
		Unit:      f.Unit,
		Reference: f.Reference,
		Min:       f.Constraint.Min,
		Max:       f.Constraint.Max,
		Pattern:   f.Constraint.Pattern,
		Options:   f.Options(),
	}
}

func ToGroupedSchemaResponse(schema domain.GroupedSchema) GroupedSchemaResponse {
	response := GroupedSchemaResponse{Categories: make([]CategoryResponse, len(schema.Categories))}
	for i, category := range schema.Categories {
		themes := make([]ThemeResponse, len(category.Themes))
		for j, theme := range category.Themes {
			fields := make([]FieldResponse, len(theme.Fields))
			for k, field := range theme.Fields {
				fields[k] = ToFieldResponse(field)
			}
			themes[j] = ThemeResponse{Name: theme.Name, Fields: fields}
		}
		response.Categories[i] = CategoryResponse{Name: category.Name, Themes: themes}
	}
	return response
}

type SessionCreateRequest struct {
	CompanyID       int    `json:"company_id"`
	ReportingPeriod string `json:"reporting_period"`
	Methodology     string `json:"methodology"`
}

type SnapshotEntryResponse struct {
	Value           string `json:"value"`
	ReportingPeriod string `json:"reporting_period,omitempty"`
}

type SessionResponse struct {
	ID              string                           `json:"id"`
	CompanyID       int                              `json:"company_id"`
	Methodology     string                           `json:"methodology"`
	ReportingPeriod string                           `json:"reporting_period"`
	Values          map[string]any                   `json:"values"`
	KPIFlags        map[string]bool                  `json:"kpi_flags"`
	Current         map[string]SnapshotEntryResponse `json:"current"`
	Historic        map[string]SnapshotEntryResponse `json:"historic"`
}

func ToSessionResponse(state usecases.SessionState) SessionResponse {
	return SessionResponse{
		ID:              state.ID,
		CompanyID:       state.CompanyID.Int(),
		Methodology:     string(state.Method),
		ReportingPeriod: state.ReportingPeriod.String(),
		Values:          state.Values,
		KPIFlags:        state.KPIFlags,
		Current:         toSnapshotResponse(state.Current),
		Historic:        toSnapshotResponse(state.Historic),
	}
}

func toSnapshotResponse(snapshot domain.Snapshot) map[string]SnapshotEntryResponse {
	response := make(map[string]SnapshotEntryResponse, len(snapshot))
	for field, entry := range snapshot {
		response[field] = SnapshotEntryResponse{
			Value:           entry.Value,
			ReportingPeriod: entry.ReportingPeriod,
		}
	}
	return response
}

type ValueUpdateRequest struct {
	Value any `json:"value"`
}

type ValueUpdateResponse struct {
	Field  string `json:"field"`
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

type KPIFlagRequest struct {
	IsKPI bool `json:"is_kpi"`
}

type ContextChangeRequest struct {
	Methodology     string `json:"methodology"`
	ReportingPeriod string `json:"reporting_period"`
}

type SubmissionResponse struct {
	Status      string            `json:"status"`
	RecordCount int               `json:"record_count,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

func ToSubmissionResponse(result usecases.SubmissionResult) SubmissionResponse {
	return SubmissionResponse{
		Status:      string(result.Status),
		RecordCount: result.RecordCount,
		FieldErrors: result.FieldErrors,
	}
}

type ScoreRunRequest struct {
	CompanyID       int    `json:"company_id"`
	ReportingPeriod string `json:"reporting_period"`
}

type ScoreReportResponse struct {
	PillarScores map[string]float64 `json:"pillar_scores"`
	FinalScore   float64            `json:"final_score"`
}

func ToScoreReportResponse(report domain.ScoreReport) ScoreReportResponse {
	return ScoreReportResponse{
		PillarScores: report.PillarScores,
		FinalScore:   report.FinalScore,
	}
}
