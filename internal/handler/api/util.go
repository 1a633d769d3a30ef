package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chirpnet/media-api/internal/logger"
	"github.com/chirpnet/media-api/internal/usecase/media"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, msg string, err error) {
	ctx := context.Background()
	if err != nil {
		logger.Errorf(ctx, "❌  %s: %v", msg, err)
	} else {
		logger.Error(ctx, "❌  "+msg)
	}
	w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
	RespondJSON(w, status, ErrorResponse{Error: msg})
}

func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to encode JSON response: %v", err)
	}
}

func RespondRawJSON(w http.ResponseWriter, status int, raw []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(raw); err != nil {
		logger.Errorf(context.Background(), "❌  Failed to write JSON payload: %v", err)
	}
}

// writeMediaError maps the resolver error taxonomy onto HTTP statuses.
// StillProcessing is a retryable condition, not a failure: it answers 204.
func writeMediaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, media.ErrInvalidID):
		WriteError(w, http.StatusBadRequest, "invalid media identifier", nil)
	case errors.Is(err, media.ErrNotFound):
		WriteError(w, http.StatusNotFound, "media not found", nil)
	case errors.Is(err, media.ErrIncompatibleType):
		WriteError(w, http.StatusBadRequest, "incompatible media type", nil)
	case errors.Is(err, media.ErrStillProcessing):
		w.WriteHeader(http.StatusNoContent)
	default:
		WriteError(w, http.StatusInternalServerError, "could not serve media request", err)
	}
}
