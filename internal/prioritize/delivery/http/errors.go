package http

import (
	"errors"
	"net/http"

	"task-prioritizer/internal/prioritize"
	pkgErrors "task-prioritizer/pkg/errors"
)

// Request-level errors.
var (
	errMalformedBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Malformed JSON body.")
	errExpectedArray = pkgErrors.NewHTTPError(http.StatusBadRequest, "Expected a JSON array of tasks.")
	errMissingTasks  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Provide tasks as JSON in `tasks` query parameter.")
	errInvalidTasks  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid JSON in `tasks` query parameter.")
	errTasksNotArray = pkgErrors.NewHTTPError(http.StatusBadRequest, "`tasks` must be a JSON array.")
	errBodyTooLarge  = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "Request body too large.")
)

const (
	msgInvalidWeights = "Invalid weight parameters."
	msgInvalidTaskFmt = "Invalid task at index %d"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// It returns nil for errors that are not the client's fault.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, prioritize.ErrUnknownStrategy):
		return pkgErrors.NewHTTPErrorWithDetails(http.StatusBadRequest, "Unknown strategy.", map[string]any{
			paramStrategy: []string{"Must be one of: smart, fast, impact, deadline."},
		})
	case errors.Is(err, prioritize.ErrNegativeWeight):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, msgInvalidWeights)
	case errors.Is(err, prioritize.ErrTooManyTasks):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Too many tasks in one request.")
	default:
		return nil
	}
}
