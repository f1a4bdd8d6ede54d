package usecases

import (
	"context"

	"esg-server/internal/esg/domain"
)

//go:generate mockgen -source=./api.go -destination=../../../test/unit/doubles/esg/usecases/api_mock.go -package=usecases -mock_names=SchemaService=MockSchemaService,SessionService=MockSessionService,SubmissionService=MockSubmissionService,ScoreService=MockScoreService

type SchemaService interface {
	Schema(ctx context.Context) ([]domain.Field, error)
	SchemaByName(ctx context.Context) (map[string]domain.Field, error)
	GroupedSchema(ctx context.Context, method domain.Method) (domain.GroupedSchema, error)
}

type SessionService interface {
	CreateSession(ctx context.Context, companyID domain.CompanyID, period domain.ReportingPeriod, method domain.Method) (SessionState, error)
	GetSession(ctx context.Context, id string) (SessionState, error)
	SetValue(ctx context.Context, id, field string, value any) (domain.ValidationResult, error)
	SetKPIFlag(ctx context.Context, id, field string, isKPI bool) error
	ChangeContext(ctx context.Context, id string, method domain.Method, period domain.ReportingPeriod) error
	ClearValues(ctx context.Context, id string) error
	RefreshSnapshot(ctx context.Context, id string, kind domain.SnapshotKind) (domain.Snapshot, error)
	SubmissionInput(ctx context.Context, id string) (domain.SubmissionInput, error)
	CompleteSubmission(ctx context.Context, id string) error
	ActiveSessionIDs(ctx context.Context) []string
	PruneIdle(ctx context.Context) int
}

type SubmissionService interface {
	Submit(ctx context.Context, sessionID string) (SubmissionResult, error)
}

type ScoreService interface {
	Run(ctx context.Context, companyID domain.CompanyID, period domain.ReportingPeriod) (domain.ScoreReport, error)
}

type SubmissionStatus string

const (
	SubmissionStatusSubmitted       SubmissionStatus = "submitted"
	SubmissionStatusNothingToSubmit SubmissionStatus = "nothing_to_submit"
	SubmissionStatusInvalid         SubmissionStatus = "invalid"
)

// SubmissionResult reports the outcome of a submit. Validation failures are
// routine and travel here rather than as errors; only session lookup and
// backend rejection surface as errors.
type SubmissionResult struct {
	Status      SubmissionStatus
	RecordCount int
	FieldErrors domain.ValidationErrors
}

// SessionState is a read-only copy of a form session, safe to hand across
// the API boundary.
type SessionState struct {
	ID              string
	CompanyID       domain.CompanyID
	Method          domain.Method
	ReportingPeriod domain.ReportingPeriod
	Values          map[string]any
	KPIFlags        map[string]bool
	Current         domain.Snapshot
	Historic        domain.Snapshot
}
