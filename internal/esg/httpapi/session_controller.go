package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"esg-server/internal/esg/domain"
	"esg-server/internal/esg/httpapi/internal"
	"esg-server/internal/esg/usecases"
	"esg-server/internal/infra/httpserver"
)

const (
	createSessionErrMessage   = "failed to create session"
	sessionNotFoundErrMessage = "session not found"
	invalidBodyErrMessage     = "invalid request body"
	invalidPeriodErrMessage   = "invalid reporting period"
	invalidKindErrMessage     = "invalid snapshot kind"
	setValueErrMessage        = "failed to set value"
	refreshErrMessage         = "failed to refresh snapshot"
)

func NewSessionController(service usecases.SessionService, defaultCompanyID domain.CompanyID) *SessionController {
	return &SessionController{
		service:          service,
		defaultCompanyID: defaultCompanyID,
	}
}

var _ httpserver.Controller = &SessionController{}

type SessionController struct {
	service          usecases.SessionService
	defaultCompanyID domain.CompanyID
}

func (c *SessionController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/sessions", c.createSession())
	router.Handle("GET /v1/sessions/{id}", c.getSession())
	router.Handle("PUT /v1/sessions/{id}/values/{field}", c.setValue())
	router.Handle("PUT /v1/sessions/{id}/kpi-flags/{field}", c.setKPIFlag())
	router.Handle("PUT /v1/sessions/{id}/context", c.changeContext())
	router.Handle("DELETE /v1/sessions/{id}/values", c.clearValues())
	router.Handle("POST /v1/sessions/{id}/snapshots/{kind}/refresh", c.refreshSnapshot())
}

func (c *SessionController) createSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.SessionCreateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		period, err := domain.ParseReportingPeriod(body.ReportingPeriod)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidPeriodErrMessage)
			return
		}
		method, err := domain.ParseMethod(body.Methodology)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidMethodErrMessage)
			return
		}

		companyID := domain.CompanyID(body.CompanyID)
		if body.CompanyID == 0 {
			companyID = c.defaultCompanyID
		}

		state, err := c.service.CreateSession(r.Context(), companyID, period, method)
		if err != nil {
			slog.Error("creating session", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, createSessionErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusCreated, internal.ToSessionResponse(state))
	}
}

func (c *SessionController) getSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpserver.GetPathParam(r, "id")

		state, err := c.service.GetSession(r.Context(), id)
		if err != nil {
			replySessionError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSessionResponse(state))
	}
}

// setValue stores the value and reports the live validation verdict. An
// invalid value answers 422 but is still stored; submission gates on the
// same rule later.
func (c *SessionController) setValue() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpserver.GetPathParam(r, "id")
		field := httpserver.GetPathParam(r, "field")

		var body internal.ValueUpdateRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		result, err := c.service.SetValue(r.Context(), id, field, body.Value)
		if err != nil {
			if errors.Is(err, usecases.ErrSessionNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, sessionNotFoundErrMessage)
				return
			}
			slog.Error("setting value", slog.String("field", field), slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusInternalServerError, setValueErrMessage)
			return
		}

		status := http.StatusOK
		if !result.Valid {
			status = http.StatusUnprocessableEntity
		}
		httpserver.ReplyJSONResponse(w, status, internal.ValueUpdateResponse{
			Field:  field,
			Valid:  result.Valid,
			Reason: result.Reason,
		})
	}
}

func (c *SessionController) setKPIFlag() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpserver.GetPathParam(r, "id")
		field := httpserver.GetPathParam(r, "field")

		var body internal.KPIFlagRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		if err := c.service.SetKPIFlag(r.Context(), id, field, body.IsKPI); err != nil {
			replySessionError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}

func (c *SessionController) changeContext() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpserver.GetPathParam(r, "id")

		var body internal.ContextChangeRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		period, err := domain.ParseReportingPeriod(body.ReportingPeriod)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidPeriodErrMessage)
			return
		}
		method, err := domain.ParseMethod(body.Methodology)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidMethodErrMessage)
			return
		}

		if err := c.service.ChangeContext(r.Context(), id, method, period); err != nil {
			replySessionError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}

func (c *SessionController) clearValues() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpserver.GetPathParam(r, "id")

		if err := c.service.ClearValues(r.Context(), id); err != nil {
			replySessionError(w, err)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusNoContent, nil)
	}
}

func (c *SessionController) refreshSnapshot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpserver.GetPathParam(r, "id")

		kind, err := domain.ParseSnapshotKind(httpserver.GetPathParam(r, "kind"))
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidKindErrMessage)
			return
		}

		state, err := c.service.GetSession(r.Context(), id)
		if err != nil {
			replySessionError(w, err)
			return
		}

		if _, err := c.service.RefreshSnapshot(r.Context(), id, kind); err != nil {
			if errors.Is(err, usecases.ErrSnapshotStale) {
				// The session moved to a different context while the fetch
				// was in flight; nothing was applied.
				httpserver.ReplyJSONResponse(w, http.StatusConflict, internal.ToSessionResponse(state))
				return
			}
			slog.Error("refreshing snapshot",
				slog.String("session_id", id),
				slog.String("kind", string(kind)),
				slog.String("error", err.Error()),
			)
			httpserver.ReplyWithError(w, http.StatusBadGateway, refreshErrMessage)
			return
		}

		state, err = c.service.GetSession(r.Context(), id)
		if err != nil {
			replySessionError(w, err)
			return
		}
		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToSessionResponse(state))
	}
}

func replySessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, usecases.ErrSessionNotFound) {
		httpserver.ReplyWithError(w, http.StatusNotFound, sessionNotFoundErrMessage)
		return
	}
	slog.Error("session operation failed", slog.String("error", err.Error()))
	httpserver.ReplyWithError(w, http.StatusInternalServerError, "internal error")
}
