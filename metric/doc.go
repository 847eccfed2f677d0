// Package metric provides Prometheus instrumentation for the fixie codec.
//
// The codec itself is purely functional and records nothing. Callers that
// want operational visibility wrap it in a Codec, which counts decode and
// encode operations per message type, classifies decode failures, and
// observes wire message sizes - then delegates to the pure functions.
//
// Metrics hang off a private prometheus.Registry so embedding applications
// control exposition; PrometheusRegistry exposes it for an HTTP handler or
// a push gateway.
package metric
