package api

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chirpnet/media-api/internal/port"
)

func GetMetadataHandler(svc port.MetadataGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := chi.URLParam(r, "id")
		if token == "" {
			WriteError(w, http.StatusBadRequest, "media identifier is required", nil)
			return
		}

		out, err := svc.GetAudioMetadata(r.Context(), token)
		if err != nil {
			writeMediaError(w, err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Returned metadata for %s", token)
	}
}
