package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "consult-booking/internal/handler/dto/response"
	"consult-booking/internal/handler/httperr"
	"consult-booking/internal/pkg/errs"
	"consult-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability     queries.AvailabilityQueries
	defaultStartHour int
	defaultEndHour   int
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries, defaultStartHour, defaultEndHour int) *AvailabilityHandler {
	return &AvailabilityHandler{
		availability:     availability,
		defaultStartHour: defaultStartHour,
		defaultEndHour:   defaultEndHour,
	}
}

// @Summary Query slot availability
// @Description Hourly slot capacity for one calendar day in the business timezone
// @Tags availability
// @Produce json
// @Param date query string true "Calendar date (YYYY-MM-DD)"
// @Param startHour query int false "First hour of the window (default 9)"
// @Param endHour query int false "Hour the window ends, exclusive (default 17)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/availability [get]
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.Abort(c, http.StatusBadRequest, errs.New("missing date"),
			httperr.CodeValidationError, "date query parameter is required")
		return
	}

	startHour, err := h.hourParam(c, "startHour", h.defaultStartHour)
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err,
			httperr.CodeValidationError, "startHour must be an integer")
		return
	}
	endHour, err := h.hourParam(c, "endHour", h.defaultEndHour)
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err,
			httperr.CodeValidationError, "endHour must be an integer")
		return
	}

	view, err := h.availability.DaySchedule(c.Request.Context(), date, startHour, endHour)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidSlotRange):
			httperr.Abort(c, http.StatusBadRequest, err,
				httperr.CodeValidationError, "startHour and endHour must satisfy 0 <= start < end <= 24")
		case errors.Is(err, errs.ErrDomainValidation):
			httperr.Abort(c, http.StatusBadRequest, err,
				httperr.CodeValidationError, "date must be formatted as YYYY-MM-DD")
		case errors.Is(err, errs.ErrDatabaseOperationFailed):
			httperr.Abort(c, http.StatusInternalServerError, err,
				httperr.CodeDatabaseError, "Failed to load availability")
		default:
			httperr.Abort(c, http.StatusInternalServerError, err,
				httperr.CodeInternalError, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromDaySchedule(view))
}

func (h *AvailabilityHandler) hourParam(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
