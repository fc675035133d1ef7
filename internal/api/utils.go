package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	log "github.com/sirupsen/logrus"
)

func decodeJsonBody(body io.Reader, v any) error {
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("malformed json body, %w", err)
	}
	return nil
}

func respondWithJson(w http.ResponseWriter, statusCode int, response []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(response); err != nil {
		log.Errorf("unable to write response, %v", err)
	}
}

// handlerError translates service sentinel errors into http status codes.
// The wrapped message is surfaced as-is, services are responsible for
// keeping it user safe.
func handlerError(err error, w http.ResponseWriter) {
	var statusCode int
	switch {
	case errors.Is(err, mentor_errors.ErrInvalidRequest):
		statusCode = http.StatusBadRequest
	case errors.Is(err, mentor_errors.ErrInvalidUserCredentials):
		statusCode = http.StatusUnauthorized
	case errors.Is(err, mentor_errors.ErrUnAuthorized):
		statusCode = http.StatusForbidden
	case errors.Is(err, mentor_errors.ErrNotFound):
		statusCode = http.StatusNotFound
	case errors.Is(err, mentor_errors.ErrEntityAlreadyExist):
		statusCode = http.StatusConflict
	case errors.Is(err, mentor_errors.ErrRateLimited):
		statusCode = http.StatusTooManyRequests
	case errors.Is(err, mentor_errors.ErrHintUnavailable):
		statusCode = http.StatusServiceUnavailable
	default:
		http.Error(w, mentor_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}
	http.Error(w, err.Error(), statusCode)
}
