package contexthelpers

type contextKey string

const CurrentProfileIDContextKey = contextKey("currentProfileID")
const CurrentPathContextKey = contextKey("currentPath")
const CspNonceContextKey = contextKey("cspNonce")
