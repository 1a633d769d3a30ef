package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"

	"github.com/chirpnet/media-api/internal/api_context"
)

// WithJWTAuth authenticates requests with an HS256 bearer token and stashes
// the numeric user_id claim in the request context. An empty secret disables
// authentication entirely (requests run as user 0).
func WithJWTAuth(secret string) func(http.Handler) http.Handler {
	if secret == "" {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r)
			})
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				WriteError(w, http.StatusUnauthorized, "missing bearer token", nil)
				return
			}
			tokenStr := strings.TrimPrefix(auth, "Bearer ")
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method")
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			uid, ok := claims["user_id"].(float64)
			if !ok {
				WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
				return
			}

			ctx := context.WithValue(r.Context(), api_context.AuthUserIDKey, int64(uid))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithMediaFile parses the delivery path segment "<token>.<ext>" with an
// optional ":<resolution>" suffix and stashes it in the request context.
func WithMediaFile() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			file := chi.URLParam(r, "file")
			if file == "" {
				WriteError(w, http.StatusBadRequest, "media file is required", nil)
				return
			}

			name, resolution, _ := strings.Cut(file, ":")
			dot := strings.LastIndex(name, ".")
			if dot <= 0 || dot == len(name)-1 {
				WriteError(w, http.StatusBadRequest, fmt.Sprintf("media file %q is missing an extension", file), nil)
				return
			}

			mf := api_context.MediaFile{
				Token:      name[:dot],
				Ext:        name[dot+1:],
				Resolution: resolution,
			}
			ctx := context.WithValue(r.Context(), api_context.MediaFileKey, mf)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
