package api

import (
	"errors"
	"net/http"

	"consult-booking/internal/domain/booking"
	reqdto "consult-booking/internal/handler/dto/request"
	resdto "consult-booking/internal/handler/dto/response"
	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase/commands"
	"consult-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const confirmationMessage = "Your consultation has been booked. We will reach out on WhatsApp to confirm the details."

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Atomically reserve one consultation slot
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 200 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortBooking(c, http.StatusBadRequest, bindErr,
			httperr.CodeValidationError, "Invalid request format")
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), req.ToParams())
	if err != nil {
		var vErr *booking.ValidationError
		switch {
		case errors.As(err, &vErr):
			httperr.AbortBooking(c, http.StatusBadRequest, err,
				httperr.CodeValidationError, vErr.Message)
		case errors.Is(err, errs.ErrDuplicateBooking):
			httperr.AbortBooking(c, http.StatusBadRequest, err,
				httperr.CodeDuplicateBooking, "You already have a booking for this time slot")
		case errors.Is(err, errs.ErrCapacityExceeded):
			httperr.AbortBooking(c, http.StatusBadRequest, err,
				httperr.CodeCapacityExceeded, "This time slot is fully booked, please pick another time")
		case errors.Is(err, errs.ErrDatabaseOperationFailed):
			httperr.AbortBooking(c, http.StatusInternalServerError, err,
				httperr.CodeDatabaseError, "Failed to save booking, please try again")
		default:
			httperr.AbortBooking(c, http.StatusInternalServerError, err,
				httperr.CodeInternalError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CreateBookingResponse{
		Success:   true,
		BookingID: result.BookingID,
		Message:   confirmationMessage,
	})
}

// @Summary Get booking
// @Description Booking details for the confirmation page
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err,
			httperr.CodeValidationError, "Invalid booking ID format")
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBookingNotFound):
			httperr.Abort(c, http.StatusNotFound, err, "", "Booking not found")
		case errors.Is(err, errs.ErrDatabaseOperationFailed):
			httperr.Abort(c, http.StatusInternalServerError, err,
				httperr.CodeDatabaseError, "Failed to load booking")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err,
				httperr.CodeInternalError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
