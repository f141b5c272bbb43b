//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase"
	commonhttp "shareit/tests/common/httptest"
	usecasemock "shareit/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBookings *usecasemock.MockBookingUsecase
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBookings = usecasemock.NewMockBookingUsecase(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockBookings)

	group := s.router.Group("/bookings")
	group.Use(middleware.RequireIdentity())
	group.POST("", s.handler.Create)
	group.GET("", s.handler.ListForBooker)
	group.GET("/owner", s.handler.ListForOwner)
	group.GET("/:bookingId", s.handler.Get)
	group.PATCH("/:bookingId", s.handler.Approve)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) futureBody() map[string]any {
	start := time.Now().Add(24 * time.Hour).UTC()
	return map[string]any{
		"itemId": 10,
		"start":  start.Format(time.RFC3339),
		"end":    start.Add(time.Hour).Format(time.RFC3339),
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	s.Run("created booking starts waiting", func() {
		view := &usecase.BookingView{
			ID:     5,
			Status: booking.StatusWaiting,
			Item:   usecase.ItemRef{ID: 10, Name: "drill"},
			Booker: usecase.UserRef{ID: 20, Name: "booker"},
		}
		s.mockBookings.EXPECT().Create(gomock.Any(), int64(20), gomock.Any()).Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.futureBody(), 20)

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal("WAITING", resp.Status)
		s.Equal(int64(10), resp.Item.ID)
	})

	s.Run("missing identity header", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.futureBody(), 0)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "X-Sharer-User-Id")
	})

	s.Run("start not before end", func() {
		body := s.futureBody()
		body["end"] = body["start"]
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, 20)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking period")
	})

	s.Run("period in the past", func() {
		start := time.Now().Add(-24 * time.Hour).UTC()
		body := map[string]any{
			"itemId": 10,
			"start":  start.Format(time.RFC3339),
			"end":    start.Add(time.Hour).Format(time.RFC3339),
		}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, 20)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid booking period")
	})

	s.Run("own item reads as not found", func() {
		s.mockBookings.EXPECT().Create(gomock.Any(), int64(20), gomock.Any()).Return(nil, usecase.ErrOwnItemBooking)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.futureBody(), 20)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("unavailable item is a bad request", func() {
		s.mockBookings.EXPECT().Create(gomock.Any(), int64(20), gomock.Any()).Return(nil, usecase.ErrItemUnavailable)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", s.futureBody(), 20)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "not available")
	})
}

func (s *BookingHandlerTestSuite) TestApprove() {
	s.Run("owner approves", func() {
		view := &usecase.BookingView{ID: 5, Status: booking.StatusApproved}
		s.mockBookings.EXPECT().Approve(gomock.Any(), int64(1), int64(5), true).Return(view, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/5?approved=true", nil, 1)

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("APPROVED", resp.Status)
	})

	s.Run("second decision is rejected", func() {
		s.mockBookings.EXPECT().Approve(gomock.Any(), int64(1), int64(5), false).Return(nil, usecase.ErrAlreadyDecided)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/5?approved=false", nil, 1)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "already been decided")
	})

	s.Run("non-owner cannot see the booking", func() {
		s.mockBookings.EXPECT().Approve(gomock.Any(), int64(9), int64(5), true).Return(nil, usecase.ErrBookingNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/5?approved=true", nil, 9)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("missing approved flag", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/5", nil, 1)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "approved")
	})
}

func (s *BookingHandlerTestSuite) TestListForBooker() {
	s.Run("defaults to ALL with first page", func() {
		s.mockBookings.EXPECT().
			ListForBooker(gomock.Any(), int64(20), booking.StateAll, gomock.Any()).
			Return([]usecase.BookingView{{ID: 2}, {ID: 1}}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, 20)

		var resp []resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 2)
	})

	s.Run("unknown state fails at the edge", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=APPROVED", nil, 20)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Unknown state")
	})

	s.Run("negative from fails", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=-1", nil, 20)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid page bounds")
	})
}

func (s *BookingHandlerTestSuite) TestListForOwner() {
	s.mockBookings.EXPECT().
		ListForOwner(gomock.Any(), int64(1), booking.StateWaiting, gomock.Any()).
		Return([]usecase.BookingView{}, nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?state=WAITING", nil, 1)

	var resp []resdto.BookingResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Empty(resp)
}
