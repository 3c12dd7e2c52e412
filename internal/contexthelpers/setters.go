package contexthelpers

import (
	"context"
	"net/http"
)

func SetCurrentProfileID(r *http.Request, profileID int) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, CurrentProfileIDContextKey, profileID)
	return r.WithContext(ctx)
}

func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, CurrentPathContextKey, currentPath)
	return r.WithContext(ctx)
}

func SetCSPNonce(r *http.Request, cspNonce string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, CspNonceContextKey, cspNonce)
	return r.WithContext(ctx)
}
