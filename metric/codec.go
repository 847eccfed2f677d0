package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/KatrinaE/fixie-sub000/codec"
	"github.com/KatrinaE/fixie-sub000/errors"
	"github.com/KatrinaE/fixie-sub000/groups"
)

// Codec wraps the pure codec functions with Prometheus instrumentation.
// It owns a private registry so embedding applications choose how to expose
// the metrics. Safe for concurrent use.
type Codec struct {
	prometheusRegistry *prometheus.Registry
	groupRegistry      *groups.Registry
	Metrics            *Metrics
}

// NewCodec creates an instrumented codec resolving groups against the given
// registry. A nil registry means the built-in definitions.
func NewCodec(groupRegistry *groups.Registry) *Codec {
	promRegistry := prometheus.NewRegistry()
	metrics := NewMetrics()
	promRegistry.MustRegister(metrics.collectors()...)

	return &Codec{
		prometheusRegistry: promRegistry,
		groupRegistry:      groupRegistry,
		Metrics:            metrics,
	}
}

// PrometheusRegistry returns the underlying Prometheus registry.
func (c *Codec) PrometheusRegistry() *prometheus.Registry {
	return c.prometheusRegistry
}

// Parse decodes a wire buffer, recording the outcome.
func (c *Codec) Parse(buf []byte) (*codec.Envelope, error) {
	env, err := codec.ParseWith(buf, c.groupRegistry)
	if err != nil {
		c.Metrics.DecodeErrors.WithLabelValues(errors.Classify(err).String()).Inc()
		return nil, err
	}
	c.Metrics.MessagesDecoded.WithLabelValues(env.MsgType).Inc()
	c.Metrics.MessageBytes.WithLabelValues("decode").Observe(float64(len(buf)))
	return env, nil
}

// Encode serializes an envelope, recording the outcome.
func (c *Codec) Encode(env *codec.Envelope) []byte {
	out := env.Encode()
	c.Metrics.MessagesEncoded.WithLabelValues(env.MsgType).Inc()
	c.Metrics.MessageBytes.WithLabelValues("encode").Observe(float64(len(out)))
	return out
}
