package gateway

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"esg-server/internal/esg/domain"
	"esg-server/internal/esg/gateway/internal"
	"esg-server/internal/esg/usecases"
	"esg-server/internal/infra/sql"
)

var _ usecases.BackendGateway = &LocalGateway{}

// LocalGateway is an in-process stand-in for the remote backend, used in
// local development and the functional suite. It mirrors the backend's
// semantics: the schema is a fixed field list, submissions upsert with the
// previous value flipped to history, and scoring is a deterministic average
// per pillar.
type LocalGateway struct {
	orm    sql.ORM
	fields []domain.Field
}

func NewLocalGateway(orm sql.ORM) (*LocalGateway, error) {
	if err := orm.AutoMigrate(&internal.FormSubmission{}); err != nil {
		return nil, fmt.Errorf("migrating form submissions: %w", err)
	}

	return &LocalGateway{
		orm:    orm,
		fields: demoSchema(),
	}, nil
}

func (g *LocalGateway) FetchSchema(_ context.Context) ([]domain.Field, error) {
	fields := make([]domain.Field, len(g.fields))
	copy(fields, g.fields)
	return fields, nil
}

func (g *LocalGateway) FetchSnapshot(ctx context.Context, companyID domain.CompanyID, kind domain.SnapshotKind, method domain.Method) (domain.Snapshot, error) {
	isCurrent := kind == domain.SnapshotKindCurrent

	var rows []internal.FormSubmission
	tx := g.orm.WithContext(ctx).
		Where("company_id = ? AND methodology = ? AND is_current = ?", companyID.Int(), string(method), isCurrent).
		Order("created_at asc").
		Find(&rows)
	if err := tx.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", usecases.ErrSnapshotFetch, err)
	}

	stored := make([]internal.StoredValue, 0, len(rows))
	for _, row := range rows {
		stored = append(stored, row.ToStoredValue())
	}
	return internal.ToSnapshot(stored), nil
}

func (g *LocalGateway) PostSubmissions(ctx context.Context, records []domain.SubmissionRecord) error {
	err := g.orm.WithContext(ctx).Transaction(func(tx sql.ORM) error {
		for _, record := range records {
			flip := tx.Model(&internal.FormSubmission{}).
				Where("company_id = ? AND form_field = ? AND methodology = ? AND is_current = ?",
					record.CompanyID.Int(), record.FormField, string(record.Methodology), true).
				Updates(map[string]any{"is_current": false})
			if err := flip.Error(); err != nil {
				return err
			}

			row := internal.FormSubmission{
				ID:              uuid.NewString(),
				CompanyID:       record.CompanyID.Int(),
				ReportingPeriod: record.ReportingPeriod.String(),
				FormField:       record.FormField,
				FieldValue:      internal.FieldValueString(record.FieldValue),
				IsKPI:           record.IsKPI,
				Methodology:     string(record.Methodology),
				IsCurrent:       true,
				CreatedAt:       time.Now(),
			}
			if err := tx.Create(&row).Error(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", usecases.ErrSubmissionRejected, err)
	}
	return nil
}

// RunScore averages the current numeric values per pillar and takes the mean
// of the pillars as the final score. Deterministic on purpose so functional
// tests can assert exact numbers.
func (g *LocalGateway) RunScore(ctx context.Context, companyID domain.CompanyID, _ domain.ReportingPeriod) (domain.ScoreReport, error) {
	var rows []internal.FormSubmission
	tx := g.orm.WithContext(ctx).
		Where("company_id = ? AND is_current = ?", companyID.Int(), true).
		Find(&rows)
	if err := tx.Error(); err != nil {
		return domain.ScoreReport{}, fmt.Errorf("%w: %v", usecases.ErrScoreRun, err)
	}

	categoryByField := make(map[string]string, len(g.fields))
	for _, field := range g.fields {
		categoryByField[field.Name] = field.Category
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, row := range rows {
		category, ok := categoryByField[row.FormField]
		if !ok {
			continue
		}
		value, err := strconv.ParseFloat(row.FieldValue, 64)
		if err != nil {
			continue
		}
		sums[category] += value
		counts[category]++
	}

	report := domain.ScoreReport{PillarScores: make(map[string]float64)}
	for _, pillar := range []string{"Environmental", "Social", "Governance"} {
		if counts[pillar] == 0 {
			report.PillarScores[pillar] = 0
			continue
		}
		score := sums[pillar] / float64(counts[pillar])
		if score > 100 {
			score = 100
		}
		report.PillarScores[pillar] = score
	}
	for _, score := range report.PillarScores {
		report.FinalScore += score / float64(len(report.PillarScores))
	}

	return report, nil
}

func floatPointer(v float64) *float64 {
	return &v
}

func demoSchema() []domain.Field {
	return []domain.Field{
		{
			Name: "ENV-01", Label: "Total energy consumption", Type: domain.FieldTypeNumeric,
			Method: domain.MethodInput, Category: "Environmental", Theme: "Energy", Unit: "MWh",
			Reference: "GRI 302-1",
		},
		{
			Name: "ENV-02", Label: "Scope 1 GHG emissions", Type: domain.FieldTypeNumeric,
			Method: domain.MethodInput, Category: "Environmental", Theme: "Emissions", Unit: "tCO2e",
			Reference: "GRI 305-1",
		},
		{
			Name: "SOC-01", Label: "Employee turnover rate", Type: domain.FieldTypeNumeric,
			Method: domain.MethodInput, Category: "Social", Theme: "Workforce", Unit: "%",
			Reference:  "GRI 401-1",
			Constraint: domain.Constraint{Max: floatPointer(100)},
		},
		{
			Name: "SOC-02", Label: "Collective bargaining coverage", Type: domain.FieldTypeBoolean,
			Method: domain.MethodInput, Category: "Social", Theme: "Workforce",
			Reference: "GRI 2-30",
		},
		{
			Name: "GOV-01", Label: "Anti-corruption policy", Type: domain.FieldTypeEnumerated,
			Method: domain.MethodInput, Category: "Governance", Theme: "Ethics",
			Reference:  "GRI 205-2",
			Constraint: domain.Constraint{Pattern: "(disclosed|not_disclosed)"},
		},
		{
			Name: "KPI-01", Label: "Energy intensity", Type: domain.FieldTypeNumeric,
			Method: domain.MethodKPI, Category: "Environmental", Theme: "Energy", Unit: "MWh/MEUR",
		},
	}
}
