package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics contains the codec-level metrics.
type Metrics struct {
	MessagesDecoded *prometheus.CounterVec
	MessagesEncoded *prometheus.CounterVec
	DecodeErrors    *prometheus.CounterVec
	MessageBytes    *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance with all codec metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		MessagesDecoded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fixie",
				Subsystem: "codec",
				Name:      "decoded_total",
				Help:      "Total number of messages decoded successfully",
			},
			[]string{"msg_type"},
		),

		MessagesEncoded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fixie",
				Subsystem: "codec",
				Name:      "encoded_total",
				Help:      "Total number of messages encoded",
			},
			[]string{"msg_type"},
		),

		DecodeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "fixie",
				Subsystem: "codec",
				Name:      "decode_errors_total",
				Help:      "Total number of decode failures by error class",
			},
			[]string{"class"},
		),

		MessageBytes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "fixie",
				Subsystem: "codec",
				Name:      "message_bytes",
				Help:      "Wire message sizes in bytes",
				Buckets:   prometheus.ExponentialBuckets(64, 2, 10),
			},
			[]string{"direction"},
		),
	}
}

// collectors returns every metric for bulk registration.
func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.MessagesDecoded,
		m.MessagesEncoded,
		m.DecodeErrors,
		m.MessageBytes,
	}
}
