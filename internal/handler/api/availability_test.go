//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"consult-booking/internal/handler/api"
	resdto "consult-booking/internal/handler/dto/response"
	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase/queries"
	"consult-booking/tests/common/httptest"
	queriesmock "consult-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockAvailability, 9, 17)

	s.router.GET("/api/availability", s.handler.GetAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	s.Run("success: returns slots for the requested day", func() {
		view := &queries.DayScheduleView{
			Slots: []queries.SlotView{
				{Time: "9:00 AM", Datetime: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), Available: true, Capacity: 3, Booked: 1},
				{Time: "10:00 AM", Datetime: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), Available: false, Capacity: 3, Booked: 3},
			},
		}
		s.mockAvailability.EXPECT().
			DaySchedule(gomock.Any(), "2025-03-03", 9, 17).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?date=2025-03-03", nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Slots, 2)
		s.Equal("9:00 AM", body.Slots[0].Time)
		s.True(body.Slots[0].Available)
		s.False(body.Slots[1].Available)
		s.Empty(body.Error)
	})

	s.Run("success: past date yields empty slots and a reason", func() {
		view := &queries.DayScheduleView{Slots: []queries.SlotView{}, Reason: "past dates are not bookable"}
		s.mockAvailability.EXPECT().
			DaySchedule(gomock.Any(), "2020-01-01", 9, 17).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?date=2020-01-01", nil)

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Slots)
		s.Equal("past dates are not bookable", body.Error)
	})

	s.Run("success: hour overrides are forwarded", func() {
		s.mockAvailability.EXPECT().
			DaySchedule(gomock.Any(), "2025-03-03", 10, 14).
			Return(&queries.DayScheduleView{Slots: []queries.SlotView{}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?date=2025-03-03&startHour=10&endHour=14", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when date is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest,
			httperr.CodeValidationError, "date query parameter is required")
	})

	s.Run("error: 400 on non-integer hour", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/availability?date=2025-03-03&startHour=morning", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest,
			httperr.CodeValidationError, "startHour must be an integer")
	})

	s.Run("error: maps query errors to stable codes", func() {
		testCases := []struct {
			name           string
			queryError     error
			expectedStatus int
			expectedCode   string
		}{
			{
				name:           "invalid slot range",
				queryError:     errs.Mark(errors.New("bad range"), errs.ErrInvalidSlotRange),
				expectedStatus: http.StatusBadRequest,
				expectedCode:   httperr.CodeValidationError,
			},
			{
				name:           "malformed date",
				queryError:     errs.Mark(errors.New("bad date"), errs.ErrDomainValidation),
				expectedStatus: http.StatusBadRequest,
				expectedCode:   httperr.CodeValidationError,
			},
			{
				name:           "database failure",
				queryError:     errs.Mark(errors.New("connection reset"), errs.ErrDatabaseOperationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   httperr.CodeDatabaseError,
			},
			{
				name:           "unknown failure",
				queryError:     errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedCode:   httperr.CodeInternalError,
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockAvailability.EXPECT().
					DaySchedule(gomock.Any(), "2025-03-03", 9, 17).
					Return(nil, tc.queryError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?date=2025-03-03", nil)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedCode, "")
			})
		}
	})
}
