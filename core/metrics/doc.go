// Package metrics defines the sink interface used to record selections and
// strategy invocations. Concrete sinks (Prometheus, InfluxDB) live in
// infra/metrics and register themselves by type name; NewSink builds one from
// configuration and wraps several in a MultiSink.
package metrics
