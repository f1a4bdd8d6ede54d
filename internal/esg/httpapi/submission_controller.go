package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"esg-server/internal/esg/httpapi/internal"
	"esg-server/internal/esg/usecases"
	"esg-server/internal/infra/httpserver"
)

const submitErrMessage = "failed to submit form"

func NewSubmissionController(service usecases.SubmissionService) *SubmissionController {
	return &SubmissionController{
		service: service,
	}
}

var _ httpserver.Controller = &SubmissionController{}

type SubmissionController struct {
	service usecases.SubmissionService
}

func (c *SubmissionController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/sessions/{id}/submissions", c.submit())
}

func (c *SubmissionController) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httpserver.GetPathParam(r, "id")

		result, err := c.service.Submit(r.Context(), id)
		if err != nil {
			if errors.Is(err, usecases.ErrSessionNotFound) {
				httpserver.ReplyWithError(w, http.StatusNotFound, sessionNotFoundErrMessage)
				return
			}
			slog.Error("submitting form", slog.String("session_id", id), slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadGateway, submitErrMessage)
			return
		}

		status := http.StatusCreated
		switch result.Status {
		case usecases.SubmissionStatusNothingToSubmit:
			status = http.StatusOK
		case usecases.SubmissionStatusInvalid:
			status = http.StatusUnprocessableEntity
		}
		httpserver.ReplyJSONResponse(w, status, internal.ToSubmissionResponse(result))
	}
}
