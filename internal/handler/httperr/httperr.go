package httperr

import (
	"github.com/gin-gonic/gin"
)

// Stable machine-readable codes; the presentation layer branches on these,
// never on message text.
const (
	CodeValidationError  = "VALIDATION_ERROR"
	CodeDuplicateBooking = "DUPLICATE_BOOKING"
	CodeCapacityExceeded = "CAPACITY_EXCEEDED"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

type Response struct {
	Status  int    `json:"-"`
	Success *bool  `json:"success,omitempty"`
	Error   string `json:"error"`
	Code    string `json:"error_code,omitempty"`
}

// Abort writes the plain error envelope used by read endpoints.
// preserves original error for future monitoring
func Abort(c *gin.Context, status int, err error, code, msg string) {
	abortWith(c, Response{Status: status, Error: msg, Code: code}, err)
}

// AbortBooking writes the reservation envelope, which always carries
// an explicit success flag.
func AbortBooking(c *gin.Context, status int, err error, code, msg string) {
	success := false
	abortWith(c, Response{Status: status, Success: &success, Error: msg, Code: code}, err)
}

func abortWith(c *gin.Context, resp Response, err error) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
