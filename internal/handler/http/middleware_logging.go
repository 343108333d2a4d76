package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		if lw.status == 0 {
			lw.status = http.StatusOK
		}

		event := log.Info()
		if lw.status >= http.StatusInternalServerError {
			event = log.Error()
		}

		event.
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
