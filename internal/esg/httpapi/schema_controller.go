package httpapi

import (
	"log/slog"
	"net/http"

	"esg-server/internal/esg/domain"
	"esg-server/internal/esg/httpapi/internal"
	"esg-server/internal/esg/usecases"
	"esg-server/internal/infra/httpserver"
)

const (
	schemaLoadErrMessage    = "failed to load schema"
	invalidMethodErrMessage = "invalid methodology"
)

func NewSchemaController(service usecases.SchemaService) *SchemaController {
	return &SchemaController{
		service: service,
	}
}

var _ httpserver.Controller = &SchemaController{}

type SchemaController struct {
	service usecases.SchemaService
}

func (c *SchemaController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /v1/schema", c.getSchema())
}

func (c *SchemaController) getSchema() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		method, err := domain.ParseMethod(httpserver.GetQueryParam(r, "method"))
		if err != nil {
			httpserver.ReplyWithError(w, http.StatusBadRequest, invalidMethodErrMessage)
			return
		}

		schema, err := c.service.GroupedSchema(r.Context(), method)
		if err != nil {
			slog.Error("loading grouped schema", slog.String("error", err.Error()))
			httpserver.ReplyWithError(w, http.StatusBadGateway, schemaLoadErrMessage)
			return
		}

		httpserver.ReplyJSONResponse(w, http.StatusOK, internal.ToGroupedSchemaResponse(schema))
	}
}
