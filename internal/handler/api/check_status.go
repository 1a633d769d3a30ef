package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chirpnet/media-api/internal/port"
)

func CheckStatusHandler(renderer port.StatusRenderer, svc port.StatusChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "id")
		if token == "" {
			WriteError(w, http.StatusBadRequest, "media identifier is required", nil)
			return
		}

		raw, etag, err := renderer.RenderStatus(r.Context(), svc, token)
		if err != nil {
			writeMediaError(w, err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "no-cache")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Status for %s unchanged", token)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Returned status for %s", token)
	}
}
