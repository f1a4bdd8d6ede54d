package usecases

import (
	"context"
	"errors"

	"esg-server/internal/esg/domain"
)

//go:generate mockgen -source=ports.go -destination=../../../test/unit/doubles/esg/usecases/ports_mock.go -package=usecases -mock_names=SchemaProvider=MockSchemaProvider,SnapshotProvider=MockSnapshotProvider,SubmissionPoster=MockSubmissionPoster,ScoreRunner=MockScoreRunner

var (
	ErrSchemaLoad         = errors.New("schema load failed")
	ErrSnapshotFetch      = errors.New("snapshot fetch failed")
	ErrSubmissionRejected = errors.New("submission rejected by backend")
	ErrScoreRun           = errors.New("score run failed")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSnapshotStale      = errors.New("snapshot discarded: session context changed")
)

// SchemaProvider supplies the field definitions owned by the backend.
type SchemaProvider interface {
	FetchSchema(ctx context.Context) ([]domain.Field, error)
}

// SnapshotProvider supplies previously stored values for a company.
type SnapshotProvider interface {
	FetchSnapshot(ctx context.Context, companyID domain.CompanyID, kind domain.SnapshotKind, method domain.Method) (domain.Snapshot, error)
}

// SubmissionPoster hands a built batch to the backend as one logical unit.
type SubmissionPoster interface {
	PostSubmissions(ctx context.Context, records []domain.SubmissionRecord) error
}

// ScoreRunner triggers a scoring run on the backend and relays the result.
type ScoreRunner interface {
	RunScore(ctx context.Context, companyID domain.CompanyID, period domain.ReportingPeriod) (domain.ScoreReport, error)
}

// BackendGateway bundles every capability of the backend collaborator.
// Implementations translate transport failures into the sentinel errors
// above; no raw transport error crosses this boundary.
type BackendGateway interface {
	SchemaProvider
	SnapshotProvider
	SubmissionPoster
	ScoreRunner
}
