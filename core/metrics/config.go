package metrics

import "github.com/kilianp07/patterns/core/factory"

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// Address, when set, is where the Prometheus /metrics endpoint listens
	// during interactive sessions.
	Address string `json:"address"`
}
