package handler

import (
	"errors"
	"net/http"

	"habit-tracker-go/internal/domain/apperror"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// writeServiceError maps an error kind onto a status and error code. Business
// errors are logged at warn, anything unclassified at error.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, action string, err error, args ...any) {
	log := h.log
	if requestID := chimw.GetReqID(r.Context()); requestID != "" {
		log = log.With("request_id", requestID)
	}

	status, code := statusFor(err)
	if status == http.StatusInternalServerError {
		log.InternalError(action+": failed", err, args...)
		writeError(w, status, code, "internal error")
		return
	}

	log.BusinessError(action+": rejected", err, args...)
	writeError(w, status, code, clientMessage(err))
}

func statusFor(err error) (int, string) {
	switch apperror.Kind(err) {
	case apperror.ErrValidation:
		return http.StatusBadRequest, "invalid_request"
	case apperror.ErrNotFoundOrForbidden:
		return http.StatusNotFound, "not_found"
	case apperror.ErrConflict:
		return http.StatusConflict, "conflict"
	case apperror.ErrUnauthenticated:
		return http.StatusUnauthorized, "invalid_credentials"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func clientMessage(err error) string {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr.Error()
	}
	return err.Error()
}
