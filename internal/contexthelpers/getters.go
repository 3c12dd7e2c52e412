package contexthelpers

import (
	"context"
)

// HasProfile reports whether a profile has been selected for this request.
func HasProfile(ctx context.Context) bool {
	return CurrentProfileID(ctx) != 0
}

func CurrentProfileID(ctx context.Context) int {
	profileID, ok := ctx.Value(CurrentProfileIDContextKey).(int)
	if !ok {
		return 0
	}

	return profileID
}

func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(CurrentPathContextKey).(string)
	if !ok {
		return ""
	}

	return currentPath
}

func CSPNonce(ctx context.Context) string {
	cspNonce, ok := ctx.Value(CspNonceContextKey).(string)
	if !ok {
		return ""
	}

	return cspNonce
}
