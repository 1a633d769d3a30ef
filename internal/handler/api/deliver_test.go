package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/chirpnet/media-api/internal/mock"
	"github.com/chirpnet/media-api/internal/port"
	"github.com/chirpnet/media-api/internal/usecase/media"
)

func serveDeliver(svc *mock.Deliverer, method, target string, header http.Header) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.With(WithMediaFile()).Get("/api/media/{file}", DeliverHandler(svc))
	r.With(WithMediaFile()).Head("/api/media/{file}", DeliverHandler(svc))

	req := httptest.NewRequest(method, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestDeliverHandler_Full(t *testing.T) {
	svc := &mock.Deliverer{Out: &port.DeliverOutput{
		Body:        []byte("jpeg-bytes"),
		ContentType: "image/jpeg",
		Filename:    "tok_small.jpg",
		TotalSize:   10,
	}}

	rec := serveDeliver(svc, http.MethodGet, "/api/media/tok.jpg", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "jpeg-bytes" {
		t.Errorf("body = %q", rec.Body)
	}
	if got := rec.Header().Get("Content-Type"); got != "image/jpeg" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `inline; filename="tok_small.jpg"` {
		t.Errorf("Content-Disposition = %q", got)
	}
	if got := rec.Header().Get("Accept-Ranges"); got != "bytes" {
		t.Errorf("Accept-Ranges = %q", got)
	}
	if svc.In.Token != "tok" || svc.In.Ext != "jpg" {
		t.Errorf("unexpected input %+v", svc.In)
	}
}

func TestDeliverHandler_ResolutionHintForwarded(t *testing.T) {
	svc := &mock.Deliverer{Out: &port.DeliverOutput{Body: []byte("x"), ContentType: "video/mp4", Filename: "tok_480p.mp4", TotalSize: 1}}

	serveDeliver(svc, http.MethodGet, "/api/media/tok.mp4:480p", nil)

	if svc.In.Resolution != "480p" {
		t.Errorf("resolution = %q, want 480p", svc.In.Resolution)
	}
}

func TestDeliverHandler_Partial(t *testing.T) {
	svc := &mock.Deliverer{Out: &port.DeliverOutput{
		Body:        []byte("0123456789"),
		ContentType: "audio/mpeg",
		Filename:    "tok_128k.mp3",
		Partial:     true,
		RangeStart:  100,
		RangeEnd:    109,
		TotalSize:   1000,
	}}

	rec := serveDeliver(svc, http.MethodGet, "/api/media/tok.mp3", http.Header{"Range": {"bytes=100-109"}})

	if rec.Code != http.StatusPartialContent {
		t.Fatalf("status = %d, want 206", rec.Code)
	}
	if got := rec.Header().Get("Content-Range"); got != "bytes 100-109/1000" {
		t.Errorf("Content-Range = %q", got)
	}
	if got := rec.Header().Get("Content-Length"); got != "10" {
		t.Errorf("Content-Length = %q", got)
	}
	if svc.In.RangeHeader != "bytes=100-109" {
		t.Errorf("range header forwarded = %q", svc.In.RangeHeader)
	}
}

func TestDeliverHandler_Head(t *testing.T) {
	svc := &mock.Deliverer{Out: &port.DeliverOutput{
		Body:        []byte("jpeg-bytes"),
		ContentType: "image/jpeg",
		Filename:    "tok_small.jpg",
		TotalSize:   10,
	}}

	rec := serveDeliver(svc, http.MethodHead, "/api/media/tok.jpg", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Error("HEAD must not carry a body")
	}
	if got := rec.Header().Get("Content-Length"); got != "10" {
		t.Errorf("Content-Length = %q", got)
	}
	if got := rec.Header().Get("Accept-Ranges"); got != "bytes" {
		t.Errorf("Accept-Ranges = %q", got)
	}
}

func TestDeliverHandler_RangeNotSatisfiable(t *testing.T) {
	svc := &mock.Deliverer{
		Out: &port.DeliverOutput{TotalSize: 1000},
		Err: media.ErrRangeNotSatisfiable,
	}

	rec := serveDeliver(svc, http.MethodGet, "/api/media/tok.jpg", http.Header{"Range": {"bytes=2000-3000"}})

	if rec.Code != http.StatusRequestedRangeNotSatisfiable {
		t.Fatalf("status = %d, want 416", rec.Code)
	}
	if got := rec.Header().Get("Content-Range"); got != "bytes */1000" {
		t.Errorf("Content-Range = %q", got)
	}
}

func TestDeliverHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid id", media.ErrInvalidID, http.StatusBadRequest},
		{"not found", media.ErrNotFound, http.StatusNotFound},
		{"still processing", media.ErrStillProcessing, http.StatusNoContent},
		{"incompatible", media.ErrIncompatibleType, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serveDeliver(&mock.Deliverer{Err: tt.err}, http.MethodGet, "/api/media/tok.jpg", nil)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
