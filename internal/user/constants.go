package user

import "time"

// Cache defaults
const (
	// DefaultCacheSize is the maximum number of cached user records
	DefaultCacheSize = 1024

	// DefaultCacheTTL is the time-to-live for cached user records
	DefaultCacheTTL = 5 * time.Minute
)

// Log Messages
const (
	LogMsgUserCreated         = "User record created on first contact"
	LogErrFailedToResolveUser = "Failed to resolve user record"
	LogErrFailedToSaveUser    = "Failed to save user record"
)
