package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-chain-keeper/internal/logger"
	"github.com/MKhiriev/go-chain-keeper/internal/utils"
)

const originHeader = "X-Origin"

// origin requires relay requests to name the external origin they act for.
// The normalised scheme://host[:port] form is stored in the request context
// under [utils.OriginCtxKey].
func (h *Handler) origin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		raw := r.Header.Get(originHeader)
		if raw == "" {
			log.Err(ErrEmptyOrigin).Send()
			http.Error(w, ErrEmptyOrigin.Error(), http.StatusBadRequest)
			return
		}

		origin, err := normalizeOrigin(raw)
		if err != nil {
			log.Err(err).Str("origin", raw).Send()
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithOrigin(r.Context(), origin)))
	})
}

// normalizeOrigin reduces raw to scheme://host with a lower-case host.
// Paths, queries and fragments are not part of an origin.
func normalizeOrigin(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidOrigin, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidOrigin
	}

	return u.Scheme + "://" + strings.ToLower(u.Host), nil
}
