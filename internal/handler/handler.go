package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"dinehub/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already out; an encode failure here is unrecoverable.
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeDomainError maps a service error to the transport status codes: 404 for
// not-found, 400 for validation rejections, 500 for everything else.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	if errors.Is(err, model.ErrOrderNotFound) {
		writeError(w, http.StatusNotFound, model.ErrCodeOrderNotFound, model.ErrOrderNotFound.Message, logger)
		return
	}

	var de *model.DomainError
	if errors.As(err, &de) {
		writeError(w, http.StatusBadRequest, de.Code, de.Message, logger)
		return
	}

	writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}
