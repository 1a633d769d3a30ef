package api

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/chirpnet/media-api/internal/api_context"
	"github.com/chirpnet/media-api/internal/port"
	"github.com/chirpnet/media-api/internal/usecase/media"
)

// DeliverHandler serves stored variant bytes for GET and the equivalent
// headers for HEAD, honoring a single-range Range header.
func DeliverHandler(svc port.Deliverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, ok := api_context.MediaFileFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "media file is required", nil)
			return
		}

		out, err := svc.Deliver(r.Context(), port.DeliverInput{
			Token:       f.Token,
			Ext:         f.Ext,
			Resolution:  f.Resolution,
			RangeHeader: r.Header.Get("Range"),
		})
		if err != nil {
			if errors.Is(err, media.ErrRangeNotSatisfiable) {
				if out != nil {
					w.Header().Set("Content-Range", fmt.Sprintf("bytes */%d", out.TotalSize))
				}
				WriteError(w, http.StatusRequestedRangeNotSatisfiable, "requested range not satisfiable", nil)
				return
			}
			writeMediaError(w, err)
			return
		}

		w.Header().Set("Accept-Ranges", "bytes")
		w.Header().Set("Content-Type", out.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", out.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(out.Body)))

		status := http.StatusOK
		if out.Partial {
			w.Header().Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", out.RangeStart, out.RangeEnd, out.TotalSize))
			status = http.StatusPartialContent
		}
		w.WriteHeader(status)

		if r.Method == http.MethodHead {
			return
		}
		if _, err := w.Write(out.Body); err != nil {
			log.Printf("❌  Failed to write media payload for %s: %v", f.Token, err)
			return
		}
		log.Printf("✅  Served %s (%d bytes)", out.Filename, len(out.Body))
	}
}
