// Package observe provides observability primitives for URL encoding.
//
// It is a pure instrumentation library: spans, counters and structured logs
// around encode calls. The encoder package wires a Middleware in when one is
// configured; without it no telemetry is produced.
package observe
