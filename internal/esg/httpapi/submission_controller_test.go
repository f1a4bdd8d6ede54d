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

var _ = Describe("SubmissionController", func() {
	var controller *httpapi.SubmissionController
	var mockService *mockusecases.MockSubmissionService
	var ctrl *gomock.Controller
	var recorder *httptest.ResponseRecorder
	var router *http.ServeMux

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		mockService = mockusecases.NewMockSubmissionService(ctrl)
		controller = httpapi.NewSubmissionController(mockService)
		recorder = httptest.NewRecorder()
		router = http.NewServeMux()
		controller.AddRoutes(router)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("submit", func() {
		When("the batch is accepted", func() {
			It("answers created with the record count", func() {
				mockService.EXPECT().
					Submit(gomock.Any(), "sid-1").
					Return(usecases.SubmissionResult{Status: usecases.SubmissionStatusSubmitted, RecordCount: 3}, nil)

				request := httptest.NewRequest("POST", "/v1/sessions/sid-1/submissions", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusCreated))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["status"]).To(Equal("submitted"))
				Expect(response["record_count"]).To(BeEquivalentTo(3))
			})
		})

		When("nothing was edited", func() {
			It("answers ok with a notice", func() {
				mockService.EXPECT().
					Submit(gomock.Any(), "sid-1").
					Return(usecases.SubmissionResult{Status: usecases.SubmissionStatusNothingToSubmit}, nil)

				request := httptest.NewRequest("POST", "/v1/sessions/sid-1/submissions", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusOK))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["status"]).To(Equal("nothing_to_submit"))
			})
		})

		When("values fail validation", func() {
			It("answers unprocessable entity with per-field reasons", func() {
				mockService.EXPECT().
					Submit(gomock.Any(), "sid-1").
					Return(usecases.SubmissionResult{
						Status:      usecases.SubmissionStatusInvalid,
						FieldErrors: domain.ValidationErrors{"SOC-01": "must be a number"},
					}, nil)

				request := httptest.NewRequest("POST", "/v1/sessions/sid-1/submissions", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusUnprocessableEntity))

				var response map[string]any
				Expect(json.Unmarshal(recorder.Body.Bytes(), &response)).To(Succeed())
				Expect(response["field_errors"]).To(HaveKeyWithValue("SOC-01", "must be a number"))
			})
		})

		When("the backend rejects the batch", func() {
			It("answers bad gateway", func() {
				mockService.EXPECT().
					Submit(gomock.Any(), "sid-1").
					Return(usecases.SubmissionResult{}, usecases.ErrSubmissionRejected)

				request := httptest.NewRequest("POST", "/v1/sessions/sid-1/submissions", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusBadGateway))
			})
		})

		When("the session does not exist", func() {
			It("answers not found", func() {
				mockService.EXPECT().
					Submit(gomock.Any(), "missing").
					Return(usecases.SubmissionResult{}, usecases.ErrSessionNotFound)

				request := httptest.NewRequest("POST", "/v1/sessions/missing/submissions", nil)
				router.ServeHTTP(recorder, request)

				Expect(recorder.Code).To(Equal(http.StatusNotFound))
			})
		})
	})
})
