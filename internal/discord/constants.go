package discord

// Log Messages
const (
	LogMsgBotRunning            = "Discord bot is now running. Press CTRL-C to exit."
	LogMsgBotReady              = "Bot is ready"
	LogMsgCheckingCommands      = "Checking Discord commands..."
	LogMsgForceUpdatingCommands = "Force update enabled - replacing all commands"
	LogMsgCommandsUnchanged     = "Commands unchanged, skipping registration"
	LogMsgUpdatingCommands      = "Commands changed, updating..."
	LogMsgCommandsUpdated       = "Commands updated successfully"
	LogMsgCommandRejected       = "Command rejected"
)

// Error Messages
const (
	LogErrBadAccountID          = "Failed to parse account id"
	LogErrDeferFailed           = "Failed to send deferred response"
	LogErrEditResponseFailed    = "Failed to edit interaction response"
	LogErrSendResponseFailed    = "Failed to send response"
	LogErrMessageDispatchFailed = "Failed to process message"
)
