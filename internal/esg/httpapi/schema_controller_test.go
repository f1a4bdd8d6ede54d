package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"esg-server/internal/esg/domain"
	"esg-server/internal/esg/httpapi"
	"esg-server/internal/esg/usecases"
	mockusecases "esg-server/test/unit/doubles/esg/usecases"
)

var _ = Describe("SchemaController", func() {
	var controller *httpapi.SchemaController
	var mockService *mockusecases.MockSchemaService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockSchemaService(ctrl)
		controller = httpapi.NewSchemaController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("getSchema", func() {
		When("the schema loads", func() {
			BeforeEach(func() {
				grouped := domain.GroupedSchema{
					Categories: []domain.CategoryGroup{
						{
							Name: "Governance",
							Themes: []domain.ThemeGroup{
								{
									Name: "Ethics",
									Fields: []domain.Field{
										{
											Name:       "GOV-01",
											Label:      "Anti-corruption policy",
											Type:       domain.FieldTypeEnumerated,
											Method:     domain.MethodInput,
											Category:   "Governance",
											Theme:      "Ethics",
											Constraint: domain.Constraint{Pattern: "(disclosed|not_disclosed)"},
										},
									},
								},
							},
						},
					},
				}
				mockService.EXPECT().
					GroupedSchema(gomock.Any(), domain.MethodInput).
					Return(grouped, nil)
			})

			It("returns grouped fields with resolved options", func() {
				request := httptest.NewRequest("GET", "/v1/schema?method=input", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())

				categories := response["categories"].([]any)
				Expect(categories).To(HaveLen(1))
				category := categories[0].(map[string]any)
				Expect(category["name"]).To(Equal("Governance"))
				themes := category["themes"].([]any)
				theme := themes[0].(map[string]any)
				fields := theme["fields"].([]any)
				field := fields[0].(map[string]any)
				Expect(field["name"]).To(Equal("GOV-01"))
				Expect(field["options"]).To(Equal([]any{"disclosed", "not_disclosed"}))
			})
		})

		When("no method is given", func() {
			It("defaults to the input workflow", func() {
				mockService.EXPECT().
					GroupedSchema(gomock.Any(), domain.MethodInput).
					Return(domain.GroupedSchema{}, nil)

				request := httptest.NewRequest("GET", "/v1/schema", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))
			})
		})

		When("the method is unknown", func() {
			It("answers bad request", func() {
				request := httptest.NewRequest("GET", "/v1/schema?method=bogus", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the schema cannot be loaded", func() {
			It("answers bad gateway", func() {
				mockService.EXPECT().
					GroupedSchema(gomock.Any(), domain.MethodInput).
					Return(domain.GroupedSchema{}, usecases.ErrSchemaLoad)

				request := httptest.NewRequest("GET", "/v1/schema", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadGateway))
			})
		})
	})
})
