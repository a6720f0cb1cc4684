package middleware

// Store operation labels for retry metrics
const (
	OpResolve = "resolve"
	OpSave    = "save"
)

// Log Messages
const (
	LogMsgXPAwarded     = "Message XP awarded"
	LogMsgCommandFailed = "Command body failed"
	LogErrResolveFailed = "Failed to resolve user record"
	LogErrPersistFailed = "Failed to persist user record"
)
