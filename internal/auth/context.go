package auth

import (
	"context"
	"net/http"
	"strings"
)

type fidCtxKey struct{}

// WithFID puts the authenticated fid into the context.
func WithFID(ctx context.Context, fid uint64) context.Context {
	return context.WithValue(ctx, fidCtxKey{}, fid)
}

// FIDFromContext returns the authenticated fid, ok is false when the request
// wasn't authenticated.
func FIDFromContext(ctx context.Context) (uint64, bool) {
	fid, ok := ctx.Value(fidCtxKey{}).(uint64)
	return fid, ok
}

// TokenFromRequest extracts the bearer token from the Authorization header.
func TokenFromRequest(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", ErrNoToken
	}

	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrNoToken
	}

	return parts[1], nil
}
