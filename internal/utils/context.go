// Package utils holds small helpers shared by the transport layers: context
// keys, JSON request and response handling, the HTTP client and id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so keys of other packages
// never collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// OriginCtxKey stores the external origin a relay request was made for.
var OriginCtxKey = contextKey("origin")

// WithOrigin returns a copy of ctx carrying origin.
func WithOrigin(ctx context.Context, origin string) context.Context {
	return context.WithValue(ctx, OriginCtxKey, origin)
}

// GetOriginFromContext returns the origin stored by WithOrigin. ok is false
// when none was stored or it is empty.
func GetOriginFromContext(ctx context.Context) (string, bool) {
	origin, ok := ctx.Value(OriginCtxKey).(string)
	return origin, ok && origin != ""
}
