package metrics_test

import (
	"encoding/json"
	"testing"

	"github.com/kilianp07/patterns/core/factory"
	metrics "github.com/kilianp07/patterns/core/metrics"
	_ "github.com/kilianp07/patterns/infra/metrics"
)

/*
TestNewSink_Builtins verifies registration via infra/metrics/factory.go.

	Cases:
	- instantiate builtin nop sink
	- unknown type returns error
*/
func TestNewSink_Builtins(t *testing.T) {
	s, err := metrics.NewSink([]factory.ModuleConfig{{Type: "nop"}})
	if err != nil {
		t.Fatalf("create nop: %v", err)
	}
	if s == nil {
		t.Fatal("expected sink instance")
	}
	if _, err := metrics.NewSink([]factory.ModuleConfig{{Type: "missing"}}); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestNewSink_Multi(t *testing.T) {
	s, err := metrics.NewSink(nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, ok := s.(metrics.NopSink); !ok {
		t.Fatalf("expected NopSink got %T", s)
	}

	var cfg metrics.Config
	if err := json.Unmarshal([]byte(`{"sinks":[{"type":"nop"},{"type":"nop"}]}`), &cfg); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	s, err = metrics.NewSink(cfg.Sinks)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	ms, ok := s.(*metrics.MultiSink)
	if !ok || len(ms.Sinks) != 2 {
		t.Fatalf("expected MultiSink with two sinks got %T", s)
	}
}

func TestSinkTypes(t *testing.T) {
	types := metrics.SinkTypes()
	want := map[string]bool{"nop": false, "prometheus": false, "influx": false}
	for _, ty := range types {
		if _, ok := want[ty]; ok {
			want[ty] = true
		}
	}
	for ty, seen := range want {
		if !seen {
			t.Errorf("sink type %s not registered", ty)
		}
	}
}
