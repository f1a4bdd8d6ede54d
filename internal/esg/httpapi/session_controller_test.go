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

var _ = Describe("SessionController", func() {
	var controller *httpapi.SessionController
	var mockService *mockusecases.MockSessionService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var router *http.ServeMux

	sessionState := func() usecases.SessionState {
		period, err := domain.ParseReportingPeriod("2025-09-21")
		Expect(err).NotTo(HaveOccurred())
		return usecases.SessionState{
			ID:              "sid-1",
			CompanyID:       1,
			Method:          domain.MethodInput,
			ReportingPeriod: period,
			Values:          map[string]any{"SOC-01": "45"},
			KPIFlags:        map[string]bool{},
			Current:         domain.Snapshot{"SOC-01": {Value: "45", ReportingPeriod: "2024-12-31"}},
			Historic:        domain.Snapshot{},
		}
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockSessionService(ctrl)
		controller = httpapi.NewSessionController(mockService, domain.CompanyID(1))
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("createSession", func() {
		When("the request is valid", func() {
			It("creates a session and returns its state", func() {
				mockService.EXPECT().
					CreateSession(gomock.Any(), domain.CompanyID(1), gomock.Any(), domain.MethodInput).
					Return(sessionState(), nil)

				body := `{"company_id":1,"reporting_period":"2025-09-21","methodology":"input"}`
				request := httptest.NewRequest("POST", "/v1/sessions", strings.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["id"]).To(Equal("sid-1"))
				Expect(response["reporting_period"]).To(Equal("2025-09-21"))
				Expect(response["values"]).To(HaveKeyWithValue("SOC-01", "45"))
			})
		})

		When("the request omits the company id", func() {
			It("falls back to the configured default company", func() {
				mockService.EXPECT().
					CreateSession(gomock.Any(), domain.CompanyID(1), gomock.Any(), domain.MethodInput).
					Return(sessionState(), nil)

				body := `{"reporting_period":"2025-09-21","methodology":"input"}`
				request := httptest.NewRequest("POST", "/v1/sessions", strings.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))
			})
		})

		When("the reporting period is malformed", func() {
			It("answers bad request", func() {
				body := `{"company_id":1,"reporting_period":"21/09/2025","methodology":"input"}`
				request := httptest.NewRequest("POST", "/v1/sessions", strings.NewReader(body))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})
	})

	Context("getSession", func() {
		When("the session does not exist", func() {
			It("answers not found", func() {
				mockService.EXPECT().
					GetSession(gomock.Any(), "missing").
					Return(usecases.SessionState{}, usecases.ErrSessionNotFound)

				request := httptest.NewRequest("GET", "/v1/sessions/missing", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Context("setValue", func() {
		When("the value is valid", func() {
			It("answers ok with the verdict", func() {
				mockService.EXPECT().
					SetValue(gomock.Any(), "sid-1", "SOC-01", "45").
					Return(domain.ValidationResult{Valid: true}, nil)

				request := httptest.NewRequest("PUT", "/v1/sessions/sid-1/values/SOC-01", strings.NewReader(`{"value":"45"}`))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["valid"]).To(BeTrue())
			})
		})

		When("the value is invalid", func() {
			It("answers unprocessable entity with the reason, value is still stored", func() {
				mockService.EXPECT().
					SetValue(gomock.Any(), "sid-1", "SOC-01", "-1").
					Return(domain.ValidationResult{Reason: "negative values are not allowed"}, nil)

				request := httptest.NewRequest("PUT", "/v1/sessions/sid-1/values/SOC-01", strings.NewReader(`{"value":"-1"}`))
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["valid"]).To(BeFalse())
				Expect(response["reason"]).To(Equal("negative values are not allowed"))
			})
		})
	})

	Context("setKPIFlag", func() {
		It("flags the field", func() {
			mockService.EXPECT().
				SetKPIFlag(gomock.Any(), "sid-1", "SOC-01", true).
				Return(nil)

			request := httptest.NewRequest("PUT", "/v1/sessions/sid-1/kpi-flags/SOC-01", strings.NewReader(`{"is_kpi":true}`))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})

	Context("changeContext", func() {
		It("moves the session to the new context", func() {
			mockService.EXPECT().
				ChangeContext(gomock.Any(), "sid-1", domain.MethodKPI, gomock.Any()).
				Return(nil)

			body := `{"methodology":"kpi","reporting_period":"2024-12-31"}`
			request := httptest.NewRequest("PUT", "/v1/sessions/sid-1/context", strings.NewReader(body))
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})

	Context("clearValues", func() {
		It("clears the working values", func() {
			mockService.EXPECT().
				ClearValues(gomock.Any(), "sid-1").
				Return(nil)

			request := httptest.NewRequest("DELETE", "/v1/sessions/sid-1/values", nil)
			router.ServeHTTP(recorder, request)

			Expect(recorder.Code).To(Equal(http.StatusNoContent))
		})
	})

	Context("refreshSnapshot", func() {
		When("the refresh succeeds", func() {
			It("returns the refreshed session state", func() {
				state := sessionState()
				mockService.EXPECT().GetSession(gomock.Any(), "sid-1").Return(state, nil).Times(2)
				mockService.EXPECT().
					RefreshSnapshot(gomock.Any(), "sid-1", domain.SnapshotKindCurrent).
					Return(state.Current, nil)

				request := httptest.NewRequest("POST", "/v1/sessions/sid-1/snapshots/current/refresh", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["current"]).To(HaveKey("SOC-01"))
			})
		})

		When("the kind is unknown", func() {
			It("answers bad request", func() {
				request := httptest.NewRequest("POST", "/v1/sessions/sid-1/snapshots/latest/refresh", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("the session context changed while fetching", func() {
			It("answers conflict", func() {
				mockService.EXPECT().GetSession(gomock.Any(), "sid-1").Return(sessionState(), nil)
				mockService.EXPECT().
					RefreshSnapshot(gomock.Any(), "sid-1", domain.SnapshotKindHistoric).
					Return(nil, usecases.ErrSnapshotStale)

				request := httptest.NewRequest("POST", "/v1/sessions/sid-1/snapshots/historic/refresh", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusConflict))
			})
		})

		When("the backend is unavailable", func() {
			It("answers bad gateway", func() {
				mockService.EXPECT().GetSession(gomock.Any(), "sid-1").Return(sessionState(), nil)
				mockService.EXPECT().
					RefreshSnapshot(gomock.Any(), "sid-1", domain.SnapshotKindCurrent).
					Return(nil, usecases.ErrSnapshotFetch)

				request := httptest.NewRequest("POST", "/v1/sessions/sid-1/snapshots/current/refresh", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadGateway))
			})
		})
	})
})
