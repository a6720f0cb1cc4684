package metrics

// Metric Names
const (
	MetricNameInvocationsTotal   = "quarterbot_invocations_total"
	MetricNameInvocationDuration = "quarterbot_invocation_duration_seconds"
	MetricNameUsersCreated       = "quarterbot_users_created_total"
	MetricNameStoreRetries       = "quarterbot_store_retries_total"
	MetricNameMessagesProcessed  = "quarterbot_messages_processed_total"
	MetricNameXPAwarded          = "quarterbot_xp_awarded_total"
)

// Help Texts
const (
	HelpTextInvocationsTotal   = "Total command invocations processed, by command and outcome"
	HelpTextInvocationDuration = "Command invocation duration in seconds"
	HelpTextUsersCreated       = "Total user records created on first contact"
	HelpTextStoreRetries       = "Total retried store operations, by operation"
	HelpTextMessagesProcessed  = "Total chat messages run through the progression engine"
	HelpTextXPAwarded          = "Total XP awarded for eligible messages"
)

// Labels
const (
	LabelCommand   = "command"
	LabelStatus    = "status"
	LabelOperation = "operation"
)

// Status label values
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// InvocationLatencyBuckets covers the expected command latency range
var InvocationLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
