package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	InboundMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_inbound_messages_total",
			Help: "Total inbound WhatsApp messages by classified intent",
		},
		[]string{"intent"},
	)

	HandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_handler_errors_total",
			Help: "Total intent handler failures converted to apology replies",
		},
		[]string{"intent"},
	)

	DedupSuppressed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_dedup_suppressed_total",
			Help: "Total retried webhook deliveries suppressed by the dedup cache",
		},
	)

	OutboundFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "webhook_outbound_failures_total",
			Help: "Total outbound message deliveries that failed",
		},
	)
)
