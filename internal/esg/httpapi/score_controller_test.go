package httpapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"esg-server/internal/esg/domain"
	"esg-server/internal/esg/httpapi"
	"esg-server/internal/esg/usecases"
	mockusecases "esg-server/test/unit/doubles/esg/usecases"
)

var _ = Describe("ScoreController", func() {
	var controller *httpapi.ScoreController
	var mockService *mockusecases.MockScoreService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockScoreService(ctrl)
		controller = httpapi.NewScoreController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("runScore", func() {
		When("the run succeeds", func() {
			It("relays the pillar scores", func() {
				mockService.EXPECT().
					Run(gomock.Any(), domain.CompanyID(1), gomock.Any()).
					Return(domain.ScoreReport{
						PillarScores: map[string]float64{"Environmental": 80, "Social": 60, "Governance": 70},
						FinalScore:   70,
					}, nil)

				body := `{"company_id":1,"reporting_period":"2025-09-21"}`
				request := httptest.NewRequest("POST", "/v1/scores/run", strings.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["final_score"]).To(BeEquivalentTo(70))
				Expect(response["pillar_scores"]).To(HaveKeyWithValue("Environmental", BeEquivalentTo(80)))
			})
		})

		When("the period is malformed", func() {
			It("answers bad request", func() {
				body := `{"company_id":1,"reporting_period":"Q3 2025"}`
				request := httptest.NewRequest("POST", "/v1/scores/run", strings.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the backend run fails", func() {
			It("answers bad gateway", func() {
				mockService.EXPECT().
					Run(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.ScoreReport{}, usecases.ErrScoreRun)

				body := `{"company_id":1,"reporting_period":"2025-09-21"}`
				request := httptest.NewRequest("POST", "/v1/scores/run", strings.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadGateway))
			})
		})
	})
})
