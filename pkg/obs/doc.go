// Package obs adds Prometheus metrics and OpenTelemetry tracing around
// the mount engine without the engine knowing about either.
//
// Two layers compose freely: InstrumentBackend counts individual
// backend primitives, and Engine wraps whole passes (mount, patch,
// hydrate) in spans with pass-level counters and timings.
package obs
