// Package metrics provides Prometheus instrumentation for the engine.
//
// A Collector is created per application root and handed to Mount and to the
// dispatch loop. All record methods are nil-safe, so uninstrumented roots
// simply pass no collector.
//
// Metrics exposed (under the configured namespace, default "canopy"):
//   - renders_total / renders_skipped_total
//   - render_duration_seconds
//   - patches_applied_total{op}
//   - messages_total{kind}
//   - messages_forwarded_total
//   - rows_materialized_total
//   - instances_mounted
package metrics
