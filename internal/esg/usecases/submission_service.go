package usecases

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"esg-server/internal/esg/domain"
	"esg-server/internal/infra/async"
)

var _ SubmissionService = &SimpleSubmissionService{}

func NewSubmissionService(sessions SessionService, poster SubmissionPoster, broker async.InternalBroker) *SimpleSubmissionService {
	meter := otel.Meter("esg-server")
	counter, err := meter.Int64Counter("esg_server.submissions.total")
	if err != nil {
		slog.Warn("submission counter setup failed", slog.String("error", err.Error()))
	}

	return &SimpleSubmissionService{
		sessions: sessions,
		poster:   poster,
		broker:   broker,
		counter:  counter,
	}
}

type SimpleSubmissionService struct {
	sessions SessionService
	poster   SubmissionPoster
	broker   async.InternalBroker
	counter  metric.Int64Counter
}

// Submit gathers the session's edits, builds the typed batch and posts it
// as one logical unit. Validation failures and an all-empty edit set are
// reported as ordinary outcomes; the session keeps its state on every path
// except a successful post.
func (s *SimpleSubmissionService) Submit(ctx context.Context, sessionID string) (SubmissionResult, error) {
	input, err := s.sessions.SubmissionInput(ctx, sessionID)
	if err != nil {
		return SubmissionResult{}, err
	}

	records, err := domain.BuildSubmission(input)
	if err != nil {
		var fieldErrors domain.ValidationErrors
		switch {
		case errors.Is(err, domain.ErrNothingToSubmit):
			s.count(ctx, string(SubmissionStatusNothingToSubmit))
			return SubmissionResult{Status: SubmissionStatusNothingToSubmit}, nil
		case errors.As(err, &fieldErrors):
			s.count(ctx, string(SubmissionStatusInvalid))
			return SubmissionResult{Status: SubmissionStatusInvalid, FieldErrors: fieldErrors}, nil
		default:
			return SubmissionResult{}, err
		}
	}

	if err := s.poster.PostSubmissions(ctx, records); err != nil {
		s.count(ctx, "rejected")
		s.publish(ctx, EventSubmissionFailed, sessionID, input.CompanyID)
		return SubmissionResult{}, err
	}

	if err := s.sessions.CompleteSubmission(ctx, sessionID); err != nil {
		slog.Warn("session reset after submission failed",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	slog.Info("submission accepted",
		slog.String("session_id", sessionID),
		slog.Int("record_count", len(records)),
	)
	s.count(ctx, string(SubmissionStatusSubmitted))
	s.publish(ctx, EventSubmissionAccepted, sessionID, input.CompanyID)

	return SubmissionResult{Status: SubmissionStatusSubmitted, RecordCount: len(records)}, nil
}

func (s *SimpleSubmissionService) count(ctx context.Context, outcome string) {
	if s.counter == nil {
		return
	}
	s.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (s *SimpleSubmissionService) publish(ctx context.Context, eventType, sessionID string, companyID domain.CompanyID) {
	if s.broker == nil {
		return
	}
	_ = s.broker.Publish(ctx, TopicSessionEvents, async.BrokerMessage{
		Event: eventType,
		Value: SessionEvent{
			Type:      eventType,
			SessionID: sessionID,
			CompanyID: companyID.Int(),
			Timestamp: time.Now(),
		},
	})
}
