package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookings usecase.BookingUsecase
}

func NewBookingHandler(bookings usecase.BookingUsecase) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// @Summary Create booking
// @Description Request a time-bounded booking of an item; it starts in WAITING
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller identity"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if err := req.Validate(time.Now()); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking period", nil)
		return
	}

	view, err := h.bookings.Create(c.Request.Context(), userID, usecase.CreateBookingParams{
		ItemID: req.ItemID,
		Start:  req.Start,
		End:    req.End,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Approve or reject booking
// @Description Owner decides a WAITING booking; the decision is final
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller identity (item owner)"
// @Param bookingId path int true "Booking ID"
// @Param approved query bool true "true approves, false rejects"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) Approve(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid approved flag", nil)
		return
	}

	view, err := h.bookings.Approve(c.Request.Context(), userID, bookingID, approved)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Visible to the booker and the item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller identity"
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	view, err := h.bookings.Get(c.Request.Context(), userID, bookingID)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List caller's bookings
// @Description Bookings made by the caller, filtered by state, newest start first
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller identity"
// @Param state query string false "ALL CURRENT PAST FUTURE WAITING REJECTED" default(ALL)
// @Param from query int false "Result offset (block-aligned)" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListForBooker(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	state, ok := queryState(c)
	if !ok {
		return
	}
	page, ok := queryPage(c)
	if !ok {
		return
	}

	views, err := h.bookings.ListForBooker(c.Request.Context(), userID, state, page)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List bookings of caller's items
// @Description Bookings of all items the caller owns, filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Caller identity (owner)"
// @Param state query string false "ALL CURRENT PAST FUTURE WAITING REJECTED" default(ALL)
// @Param from query int false "Result offset (block-aligned)" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	state, ok := queryState(c)
	if !ok {
		return
	}
	page, ok := queryPage(c)
	if !ok {
		return
	}

	views, err := h.bookings.ListForOwner(c.Request.Context(), userID, state, page)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
