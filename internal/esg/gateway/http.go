package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"esg-server/internal/esg/domain"
	"esg-server/internal/esg/gateway/internal"
	"esg-server/internal/esg/usecases"
)

var _ usecases.BackendGateway = &HTTPGateway{}

// HTTPGateway talks to the remote reporting backend. Every transport or
// decode failure is translated into the matching sentinel error before it
// crosses the port; callers never see a raw transport error.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
}

func NewHTTPGateway(baseURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (g *HTTPGateway) FetchSchema(ctx context.Context) ([]domain.Field, error) {
	var rows []internal.SchemaField
	if err := g.getJSON(ctx, g.baseURL+"/schema", &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", usecases.ErrSchemaLoad, err)
	}

	fields := make([]domain.Field, 0, len(rows))
	for _, row := range rows {
		field, err := row.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", usecases.ErrSchemaLoad, err)
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func (g *HTTPGateway) FetchSnapshot(ctx context.Context, companyID domain.CompanyID, kind domain.SnapshotKind, method domain.Method) (domain.Snapshot, error) {
	endpoint := fmt.Sprintf("%s/form-submissions/%s?%s", g.baseURL, kind, url.Values{
		"company_id":  []string{strconv.Itoa(companyID.Int())},
		"methodology": []string{string(method)},
	}.Encode())

	var rows []internal.StoredValue
	if err := g.getJSON(ctx, endpoint, &rows); err != nil {
		if isNotFound(err) {
			// The backend 404s when no submissions exist yet.
			return domain.Snapshot{}, nil
		}
		return nil, fmt.Errorf("%w: %v", usecases.ErrSnapshotFetch, err)
	}

	return internal.ToSnapshot(rows), nil
}

func (g *HTTPGateway) PostSubmissions(ctx context.Context, records []domain.SubmissionRecord) error {
	entries := make([]internal.SubmissionEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, internal.SubmissionEntryFromDomain(record))
	}

	if err := g.postJSON(ctx, g.baseURL+"/form-submissions/batch", entries, nil); err != nil {
		return fmt.Errorf("%w: %v", usecases.ErrSubmissionRejected, err)
	}
	return nil
}

func (g *HTTPGateway) RunScore(ctx context.Context, companyID domain.CompanyID, period domain.ReportingPeriod) (domain.ScoreReport, error) {
	body := internal.ScoreRunRequest{
		CompanyID:       companyID.Int(),
		ReportingPeriod: period.String(),
	}

	var response internal.ScoreRunResponse
	if err := g.postJSON(ctx, g.baseURL+"/engine/run", body, &response); err != nil {
		return domain.ScoreReport{}, fmt.Errorf("%w: %v", usecases.ErrScoreRun, err)
	}
	return response.ToDomain(), nil
}

func (g *HTTPGateway) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	return g.do(req, out)
}

func (g *HTTPGateway) postJSON(ctx context.Context, endpoint string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return g.do(req, out)
}

func (g *HTTPGateway) do(req *http.Request, out any) error {
	res, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return &statusError{code: res.StatusCode, body: string(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.code, e.body)
}

func isNotFound(err error) bool {
	statusErr, ok := err.(*statusError)
	return ok && statusErr.code == http.StatusNotFound
}
