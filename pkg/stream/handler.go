package stream

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// maxBodySize bounds inbound webhook bodies to keep a misbehaving sender
// from exhausting memory.
const maxBodySize = 1 << 20 // 1 MiB

// HandlerFunc processes one parsed stream payload. Returning an error
// yields a 422 for payload shape problems and a 500 otherwise.
type HandlerFunc func(r *http.Request, p *Payload) error

// Handler wraps fn into an http.Handler that parses the request body as a
// profile-stream payload.
func Handler(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read request body")
			return
		}

		payload, err := ParsePayload(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := fn(r, payload); err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, ErrNoProfile) || errors.Is(err, ErrNoMeta) || errors.Is(err, ErrMalformedPayload) {
				status = http.StatusUnprocessableEntity
			}
			writeError(w, status, err.Error())
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// Router mounts the stream handler on POST /, ready to be attached to an
// application router:
//
//	r.Mount("/webhooks/profile-stream", stream.Router(handle))
func Router(fn HandlerFunc) chi.Router {
	r := chi.NewRouter()
	r.Method(http.MethodPost, "/", Handler(fn))
	return r
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
