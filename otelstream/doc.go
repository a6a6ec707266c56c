// Package otelstream instruments streaming generations with OpenTelemetry.
// Handler wraps a promptwire.StreamHandler around a span, recording a
// first-token event and token totals.
package otelstream
