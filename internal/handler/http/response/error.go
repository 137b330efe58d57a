package response

import (
	"errors"
	"net/http"

	"github.com/scg-heim/heim-backend-go/internal/domain/roster"
	"github.com/scg-heim/heim-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, roster.ErrSyncInProgress):
		Conflict(w, "A sync is already running")
	case errors.Is(err, roster.ErrDecode):
		BadRequest(w, "Could not decode spreadsheet file", nil)
	case errors.Is(err, roster.ErrSnapshotNotFound):
		NotFound(w, "No persisted dataset found")
	case errors.Is(err, roster.ErrSourceUnavailable):
		ServiceUnavailable(w, "Remote source could not be fetched")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
