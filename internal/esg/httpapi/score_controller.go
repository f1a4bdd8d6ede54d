package httpapi

import (
	"log/slog"
	"net/http"

	"esg-server/internal/esg/domain"
	"esg-server/internal/esg/httpapi/internal"
	"esg-server/internal/esg/usecases"
	"esg-server/internal/infra/httpserver"
)

const scoreRunErrMessage = "failed to run scoring"

func NewScoreController(service usecases.ScoreService) *ScoreController {
	return &ScoreController{
		service: service,
	}
}

var _ httpserver.Controller = &ScoreController{}

type ScoreController struct {
	service usecases.ScoreService
}

func (c *ScoreController) AddRoutes(router *http.ServeMux) {
	router.Handle("POST /v1/scores/run", c.runScore())
}

func (c *ScoreController) runScore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body internal.ScoreRunRequest
		if err := httpserver.DecodeJSONBody(r, &body); err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidBodyErrMessage)
			return
		}

		period, err := domain.ParseReportingPeriod(body.ReportingPeriod)
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidPeriodErrMessage)
			return
		}

		report, err := c.service.Run(r.Context(), domain.CompanyID(body.CompanyID), period)
		if err != nil {
			slog.Error("running score", slog.Int("company_id", body.CompanyID), slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadGateway, scoreRunErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToScoreReportResponse(report))
	}
}
