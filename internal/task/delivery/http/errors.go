package http

import (
	"errors"
	"net/http"

	"dothis/internal/task"
	pkgErrors "dothis/pkg/errors"
)

var (
	errInvalidID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")
	errInvalidDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid date")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unrecognised is a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, task.ErrEmptyInput.Error())
	case errors.Is(err, task.ErrEmptyTitle):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, task.ErrEmptyTitle.Error())
	case errors.Is(err, task.ErrInvalidPriority), errors.Is(err, task.ErrInvalidRecurrence):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, task.ErrTaskNotFound.Error())
	case errors.Is(err, task.ErrTaskCompleted):
		return pkgErrors.NewHTTPError(http.StatusConflict, task.ErrTaskCompleted.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
