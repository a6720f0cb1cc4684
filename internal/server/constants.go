package server

// Log Messages
const (
	LogMsgServerStarting       = "Server starting"
	LogMsgRequestStarted       = "Request started"
	LogMsgRequestCompleted     = "Request completed"
	LogErrReadinessCheckFailed = "Readiness check failed"
)
