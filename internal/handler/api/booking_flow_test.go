//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"kost-booking/internal/domain/booking"
	"kost-booking/internal/domain/user"
	"kost-booking/internal/handler/api"
	resdto "kost-booking/internal/handler/dto/response"
	"kost-booking/internal/handler/middleware"
	"kost-booking/internal/pkg/errs"
	"kost-booking/internal/pkg/validator"
	"kost-booking/internal/usecase/commands"
	"kost-booking/internal/usecase/queries"
	"kost-booking/tests/common/builder"
	"kost-booking/tests/common/httptest"
	"kost-booking/tests/common/testutil"
	commandsmock "kost-booking/tests/mock/commands"
	queriesmock "kost-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingFlowHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingFlowCommands
	mockQueries  *queriesmock.MockFlowQueries
	handler      *api.BookingFlowHandler
	actor        user.Identity
}

// fakeAuth stands in for RequireAuth: any bearer token authenticates as actor.
func fakeAuth(actor *user.Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetIdentity(c, *actor)
		c.Next()
	}
}

func (s *BookingFlowHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingFlowCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFlowQueries(s.mockCtrl)
	s.handler = api.NewBookingFlowHandler(s.mockCommands, s.mockQueries)
	s.actor = builder.NewIdentityBuilder().Build()

	flows := s.router.Group("/api/booking-flows", fakeAuth(&s.actor))
	flows.POST("", s.handler.Open)
	flows.GET("/:id", s.handler.Get)
	flows.PATCH("/:id/details", s.handler.UpdateDetails)
	flows.POST("/:id/continue", s.handler.Continue)
	flows.POST("/:id/back", s.handler.Back)
	flows.PUT("/:id/payment-method", s.handler.SelectPaymentMethod)
	flows.POST("/:id/submit", s.handler.Submit)
	flows.POST("/:id/retry", s.handler.Retry)
	flows.DELETE("/:id", s.handler.Close)
}

func (s *BookingFlowHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingFlowHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingFlowHandlerTestSuite))
}

func (s *BookingFlowHandlerTestSuite) view(step booking.Step) *queries.FlowView {
	return builder.NewFlowBuilder().
		With(func(b *builder.FlowBuilder) { b.Tenant = s.actor }).
		AtStep(step).
		BuildView(s.T())
}

func (s *BookingFlowHandlerTestSuite) flowURL(id uuid.UUID, suffix string) string {
	return "/api/booking-flows/" + id.String() + suffix
}

type usecaseErrorCase struct {
	name           string
	err            error
	expectedStatus int
	expectedMsg    string
}

// ================================================================================
// TestOpen
// ================================================================================

func (s *BookingFlowHandlerTestSuite) TestOpen() {
	url := "/api/booking-flows"
	propertyID := uuid.New()
	reqBody := map[string]any{"propertyId": propertyID.String()}

	s.Run("success: returns 201 with the new flow", func() {
		view := s.view(booking.StepDetails)
		s.mockCommands.EXPECT().Open(gomock.Any(), s.actor, propertyID).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.FlowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/booking-flows/" + view.ID.String()})
		s.Equal(view.ID, body.ID)
		s.Equal("details", body.Step)
		s.Equal(1, body.StepNumber)
		s.Equal(1, body.Details.Duration)
		s.Equal("monthly", body.Details.DurationUnit)
		s.Equal("Rp 1.500.000", body.Summary.Total.Text)
		s.NotNil(body.Errors)
		s.Nil(body.SelectedPaymentMethod)
	})

	s.Run("error: 400 Bad Request on invalid body", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing propertyId", mutate: testutil.Field("propertyId", nil)},
			{name: "malformed propertyId", mutate: testutil.Field("propertyId", "not-a-uuid")},
			{name: "nil propertyId", mutate: testutil.Field("propertyId", uuid.Nil.String())},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 lists the failing field by its json name", func() {
		validator.UseJSONNamesInBinding()

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("propertyId", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertFieldErrors(s.T(), rec, "propertyId")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []usecaseErrorCase{
			{name: "property not found", err: errs.ErrPropertyNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Property not found"},
			{name: "property unavailable", err: errs.Mark(errors.New("unavailable"), errs.ErrPropertyUnavailable), expectedStatus: http.StatusConflict, expectedMsg: "Property is not available"},
			{name: "role cannot book", err: errs.ErrForbidden, expectedStatus: http.StatusForbidden, expectedMsg: "Insufficient permissions"},
			{name: "shutting down", err: commands.ErrShuttingDown, expectedStatus: http.StatusServiceUnavailable, expectedMsg: "Service is shutting down"},
			{name: "database failure", err: errs.Mark(errors.New("conn reset"), errs.ErrDatabaseOperationFailed), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Open(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingFlowHandlerTestSuite) TestGet() {
	s.Run("success: payment step with selected method", func() {
		view := s.view(booking.StepPayment)
		s.mockQueries.EXPECT().Get(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.flowURL(view.ID, ""), nil, "bearer-token")

		var body resdto.FlowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("payment", body.Step)
		s.Equal(2, body.StepNumber)
		s.Require().NotNil(body.SelectedPaymentMethod)
		s.Equal("bca", *body.SelectedPaymentMethod)
		s.Require().NotNil(body.Summary.PaymentMethod)
		s.Equal("BCA Virtual Account", body.Summary.PaymentMethod.DisplayName)
		s.True(body.Availability.CanSubmit)
		s.True(body.Availability.CanGoBack)
		s.False(body.Availability.CanContinue)
	})

	s.Run("success: confirmed flow includes the booking", func() {
		view := s.view(booking.StepConfirmed)
		s.mockQueries.EXPECT().Get(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.flowURL(view.ID, ""), nil, "bearer-token")

		var body resdto.FlowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("confirmed", body.Step)
		s.Equal(4, body.StepNumber)
		s.Require().NotNil(body.Booking)
		s.Equal("confirmed", body.Booking.Status)
		s.Equal("paid", body.Booking.PaymentStatus)
		s.Equal("STL-0123456789ABCDEF", body.Booking.SettlementReference)
		s.Equal("2025-06-02", body.Booking.CheckInDate)
		s.Equal("2025-07-02", body.Booking.EndDate)
	})

	s.Run("success: failed flow shows the failure", func() {
		view := s.view(booking.StepFailed)
		s.mockQueries.EXPECT().Get(gomock.Any(), s.actor, view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.flowURL(view.ID, ""), nil, "bearer-token")

		var body resdto.FlowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("failed", body.Step)
		s.Equal(3, body.StepNumber)
		s.Require().NotNil(body.Failure)
		s.Equal("declined", body.Failure.Kind)
		s.True(body.Availability.CanRetry)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/booking-flows/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for unknown flow", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errs.ErrFlowNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.flowURL(uuid.New(), ""), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking flow not found")
	})
}

// ================================================================================
// TestUpdateDetails
// ================================================================================

func (s *BookingFlowHandlerTestSuite) TestUpdateDetails() {
	flowID := uuid.New()
	url := s.flowURL(flowID, "/details")
	reqBody := map[string]any{
		"checkInDate":  "2025-07-01",
		"duration":     6,
		"durationUnit": "monthly",
		"phoneNumber":  "081234567890",
	}

	s.Run("success: patch is converted and the flow re-rendered", func() {
		view := s.view(booking.StepDetails)
		s.mockCommands.EXPECT().UpdateDetails(gomock.Any(), s.actor, flowID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ user.Identity, _ uuid.UUID, p booking.DetailsPatch) error {
				s.Require().NotNil(p.CheckInDate)
				s.Equal(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), *p.CheckInDate)
				s.Require().NotNil(p.Duration)
				s.Equal(6, *p.Duration)
				s.Require().NotNil(p.DurationUnit)
				s.Equal(booking.UnitMonthly, *p.DurationUnit)
				s.Equal("081234567890", *p.PhoneNumber)
				s.Nil(p.FullName)
				s.Nil(p.Note)
				return nil
			}).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), s.actor, flowID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "unknown duration unit", mutate: testutil.Field("durationUnit", "weekly")},
			{name: "check-in not ISO date", mutate: testutil.Field("checkInDate", "01-07-2025")},
			{name: "phone too long", mutate: testutil.Field("phoneNumber", strings.Repeat("0", 21))},
			{name: "note too long", mutate: testutil.Field("note", strings.Repeat("a", 1001))},
			{name: "duration not a number", mutate: testutil.Field("duration", "six")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []usecaseErrorCase{
			{name: "zero duration", err: errs.Mark(booking.ErrInvalidDuration, errs.ErrInvalidDuration), expectedStatus: http.StatusBadRequest, expectedMsg: "Duration must be at least 1"},
			{name: "past check-in", err: errs.Mark(booking.ErrCheckInInPast, errs.ErrInvalidCheckIn), expectedStatus: http.StatusBadRequest, expectedMsg: "Check-in date cannot be in the past"},
			{name: "price overflow", err: errs.Mark(booking.ErrAmountOverflow, errs.ErrDomainValidation), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid booking details"},
			{name: "locked after details", err: errs.Mark(booking.ErrDraftLocked, errs.ErrDraftLocked), expectedStatus: http.StatusConflict, expectedMsg: "cannot be changed"},
			{name: "flow gone", err: errs.ErrFlowNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Booking flow not found"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().UpdateDetails(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestStepActions
// ================================================================================

func (s *BookingFlowHandlerTestSuite) TestStepActions() {
	flowID := uuid.New()

	actions := []struct {
		name   string
		suffix string
		expect func() *gomock.Call
	}{
		{name: "continue", suffix: "/continue", expect: func() *gomock.Call {
			return s.mockCommands.EXPECT().Continue(gomock.Any(), s.actor, flowID)
		}},
		{name: "back", suffix: "/back", expect: func() *gomock.Call {
			return s.mockCommands.EXPECT().Back(gomock.Any(), s.actor, flowID)
		}},
		{name: "retry", suffix: "/retry", expect: func() *gomock.Call {
			return s.mockCommands.EXPECT().Retry(gomock.Any(), s.actor, flowID)
		}},
	}

	for _, a := range actions {
		s.Run(a.name+" success", func() {
			a.expect().Return(nil).Times(1)
			s.mockQueries.EXPECT().Get(gomock.Any(), s.actor, flowID).Return(s.view(booking.StepPayment), nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.flowURL(flowID, a.suffix), nil, "bearer-token")
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		})

		s.Run(a.name+" in the wrong step", func() {
			a.expect().Return(errs.Mark(booking.ErrIllegalTransition, errs.ErrIllegalTransition)).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.flowURL(flowID, a.suffix), nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Action not allowed in the current step")
		})
	}
}

// ================================================================================
// TestSelectPaymentMethod
// ================================================================================

func (s *BookingFlowHandlerTestSuite) TestSelectPaymentMethod() {
	flowID := uuid.New()
	url := s.flowURL(flowID, "/payment-method")

	s.Run("success", func() {
		s.mockCommands.EXPECT().SelectPaymentMethod(gomock.Any(), s.actor, flowID, "gopay").Return(nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), s.actor, flowID).Return(s.view(booking.StepPayment), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"methodId": "gopay"}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request without methodId", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *BookingFlowHandlerTestSuite) TestSubmit() {
	flowID := uuid.New()
	url := s.flowURL(flowID, "/submit")

	s.Run("success: 202 Accepted when settlement starts", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.actor, flowID).Return(true, nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), s.actor, flowID).Return(s.view(booking.StepPayment), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, nil)
	})

	s.Run("success: 200 OK when nothing was started", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.actor, flowID).Return(false, nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), s.actor, flowID).Return(s.view(booking.StepDetails), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for unknown flow", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errs.ErrFlowNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking flow not found")
	})
}

// ================================================================================
// TestClose
// ================================================================================

func (s *BookingFlowHandlerTestSuite) TestClose() {
	flowID := uuid.New()
	url := s.flowURL(flowID, "")

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().Close(gomock.Any(), s.actor, flowID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 Not Found for unknown flow", func() {
		s.mockCommands.EXPECT().Close(gomock.Any(), gomock.Any(), gomock.Any()).Return(errs.ErrFlowNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking flow not found")
	})
}
