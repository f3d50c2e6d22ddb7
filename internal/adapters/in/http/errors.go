package http

import (
	"errors"
	"net/http"

	"paneltrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps an application error to the HTTP status and payload the
// caller sees. Validation failures are client errors, lifecycle conflicts
// are 409, everything unclassified stays a 500 with a generic message so
// storage details never leak to callers.
func writeError(ctx echo.Context, err error) error {
	var notReady *errs.NotReadyError
	if errors.As(err, &notReady) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:     http.StatusConflict,
			Message:  "Order is not ready for closure",
			Blockers: notReady.Blockers,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrSequenceViolation),
		errors.Is(err, errs.ErrAlreadyClosed),
		errors.Is(err, errs.ErrNotCompleted),
		errors.Is(err, errs.ErrConcurrentModification):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
