package api

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/chirpnet/media-api/internal/api_context"
	"github.com/chirpnet/media-api/internal/port"
	"github.com/chirpnet/media-api/internal/validation"
)

const multipartMemoryLimit = 32 << 20

// UploadHandler accepts a multipart upload (fields "type" and "data"),
// creates the placeholder record and returns its token while the pipeline
// runs in the background.
func UploadHandler(svc port.Uploader, maxUploadSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

		if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				WriteError(w, http.StatusRequestEntityTooLarge, "upload exceeds the size limit", nil)
				return
			}
			WriteError(w, http.StatusBadRequest, "invalid multipart payload", err)
			return
		}

		file, _, err := r.FormFile("data")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "data file is required", err)
			return
		}
		defer func() { _ = file.Close() }()

		data, err := io.ReadAll(file)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "could not read uploaded data", err)
			return
		}

		userID, _ := api_context.AuthUserIDFromContext(r.Context())
		in := port.UploadInput{
			UserID: userID,
			Type:   r.FormValue("type"),
			Data:   data,
		}

		if errs := validation.ValidateStruct(in); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		out, err := svc.Upload(r.Context(), in)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "could not accept upload", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		log.Printf("✅  Accepted %s upload as %s", in.Type, out.ID)
	}
}
