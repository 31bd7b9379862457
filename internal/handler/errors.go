package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ecolog/carbon-tracker/internal/domain"
)

// statusForError maps a domain error to its HTTP status code. Unrecognized
// errors are treated as internal.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict
	case errors.Is(err, domain.ErrWrite):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrRoutine):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the JSON error for err. Server-side failures are logged
// here and reported to the client without the internal detail.
func respondError(w http.ResponseWriter, op string, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		slog.Error(op, "error", err)
		writeError(w, status, http.StatusText(status))
		return
	}
	writeError(w, status, err.Error())
}
