package usecases

import (
	"context"
	"log/slog"

	"esg-server/internal/esg/domain"
)

var _ ScoreService = &SimpleScoreService{}

func NewScoreService(runner ScoreRunner) *SimpleScoreService {
	return &SimpleScoreService{runner: runner}
}

// SimpleScoreService relays scoring runs to the backend. Scores are computed
// entirely on the other side; the report passes through opaque.
type SimpleScoreService struct {
	runner ScoreRunner
}

func (s *SimpleScoreService) Run(ctx context.Context, companyID domain.CompanyID, period domain.ReportingPeriod) (domain.ScoreReport, error) {
	report, err := s.runner.RunScore(ctx, companyID, period)
	if err != nil {
		return domain.ScoreReport{}, err
	}

	slog.Info("score run completed",
		slog.Int("company_id", companyID.Int()),
		slog.String("reporting_period", period.String()),
		slog.Float64("final_score", report.FinalScore),
	)
	return report, nil
}
