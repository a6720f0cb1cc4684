package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dispatch Metrics
var (
	InvocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInvocationsTotal,
			Help: HelpTextInvocationsTotal,
		},
		[]string{LabelCommand, LabelStatus},
	)

	InvocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameInvocationDuration,
			Help:    HelpTextInvocationDuration,
			Buckets: InvocationLatencyBuckets,
		},
		[]string{LabelCommand},
	)
)

// Store Metrics
var (
	UsersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersCreated,
			Help: HelpTextUsersCreated,
		},
	)

	StoreRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStoreRetries,
			Help: HelpTextStoreRetries,
		},
		[]string{LabelOperation},
	)
)

// Progression Metrics
var (
	MessagesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMessagesProcessed,
			Help: HelpTextMessagesProcessed,
		},
	)

	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
	)
)
