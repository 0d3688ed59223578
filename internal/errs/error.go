package errs

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrBadCredentials  = errors.New("Bad username or password")
	ErrInvalidToken    = errors.New("Missing or invalid token")
	ErrForbidden       = errors.New("Only admins can perform this action")
	ErrNoCopies        = errors.New("No available copies of this book")
	ErrAlreadyReturned = errors.New("Loan is already returned")
	ErrDuplicateEmail  = errors.New("Email is already registered")
	ErrBadDate         = errors.New("Invalid date format")
)

// Status maps the service error taxonomy onto HTTP statuses. State
// conflicts (no copies, double return, duplicate email) are all 409.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrNoCopies),
		errors.Is(err, ErrAlreadyReturned),
		errors.Is(err, ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, ErrBadCredentials), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrBadDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type messageResponse struct {
	Msg string `json:"msg"`
}

// NewHTTPErrorHandler renders every error as {"msg": "..."} to stay
// wire-compatible with the original API. Internal errors are logged and
// replaced with a generic message.
func NewHTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := err.Error()
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			switch m := he.Message.(type) {
			case string:
				msg = m
			case error:
				msg = m.Error()
			}
		}
		if code == http.StatusInternalServerError {
			log.Error("internal error", zap.Error(err))
			msg = "internal server error"
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, messageResponse{Msg: msg})
	}
}
