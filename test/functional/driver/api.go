package driver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

type APIDriver struct {
	baseURL string
	client  *http.Client
}

func NewAPIDriver(baseURL string) *APIDriver {
	return &APIDriver{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (d *APIDriver) GetSchema(method string) (*http.Response, error) {
	url := fmt.Sprintf("%s/v1/schema", d.baseURL)
	if method != "" {
		url = fmt.Sprintf("%s?method=%s", url, method)
	}
	return d.client.Get(url)
}

func (d *APIDriver) CreateSession(companyID int, reportingPeriod, methodology string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"company_id":       companyID,
		"reporting_period": reportingPeriod,
		"methodology":      methodology,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/sessions", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}

func (d *APIDriver) GetSession(id string) (*http.Response, error) {
	return d.client.Get(fmt.Sprintf("%s/v1/sessions/%s", d.baseURL, id))
}

func (d *APIDriver) SetValue(sessionID, field, value string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{"value": value})
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/v1/sessions/%s/values/%s", d.baseURL, sessionID, field), bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) SetKPIFlag(sessionID, field string, isKPI bool) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{"is_kpi": isKPI})
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/v1/sessions/%s/kpi-flags/%s", d.baseURL, sessionID, field), bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) ClearValues(sessionID string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/v1/sessions/%s/values", d.baseURL, sessionID), nil)
	if err != nil {
		panic(err)
	}
	return d.client.Do(req)
}

func (d *APIDriver) ChangeContext(sessionID, reportingPeriod, methodology string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"reporting_period": reportingPeriod,
		"methodology":      methodology,
	})
	if err != nil {
		panic(err)
	}
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/v1/sessions/%s/context", d.baseURL, sessionID), bytes.NewBuffer(reqBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return d.client.Do(req)
}

func (d *APIDriver) RefreshSnapshot(sessionID, kind string) (*http.Response, error) {
	return d.client.Post(fmt.Sprintf("%s/v1/sessions/%s/snapshots/%s/refresh", d.baseURL, sessionID, kind), "application/json", nil)
}

func (d *APIDriver) Submit(sessionID string) (*http.Response, error) {
	return d.client.Post(fmt.Sprintf("%s/v1/sessions/%s/submissions", d.baseURL, sessionID), "application/json", nil)
}

func (d *APIDriver) RunScore(companyID int, reportingPeriod string) (*http.Response, error) {
	reqBody, err := json.Marshal(map[string]any{
		"company_id":       companyID,
		"reporting_period": reportingPeriod,
	})
	if err != nil {
		panic(err)
	}
	return d.client.Post(fmt.Sprintf("%s/v1/scores/run", d.baseURL), "application/json", bytes.NewBuffer(reqBody))
}
