package factory

import (
	"errors"
	"testing"
)

type sample struct{ Label string }

type sampleConf struct {
	Label string `json:"label"`
	Size  int    `json:"size"`
}

// Test registry registration and instantiation using Decode.
func TestRegistry_Create(t *testing.T) {
	reg := NewRegistry[*sample]()
	if err := reg.Register("s", func(conf map[string]any) (*sample, error) {
		var c sampleConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &sample{Label: c.Label}, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}
	inst, err := reg.Create(ModuleConfig{Type: "s", Conf: map[string]any{"label": "sofa"}})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inst.Label != "sofa" {
		t.Fatalf("expected sofa got %s", inst.Label)
	}
}

// Test duplicate registration and unknown type errors.
func TestRegistry_Errors(t *testing.T) {
	reg := NewRegistry[int]()
	if err := reg.Register("x", func(map[string]any) (int, error) { return 1, nil }); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register("x", func(map[string]any) (int, error) { return 2, nil }); err == nil {
		t.Fatal("expected duplicate error")
	}
	if err := reg.Register("y", nil); err == nil {
		t.Fatal("expected nil factory error")
	}
	if err := reg.Register("", func(map[string]any) (int, error) { return 0, nil }); err == nil {
		t.Fatal("expected empty name error")
	}
	if _, err := reg.Create(ModuleConfig{Type: "y"}); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("expected unknown type error got %v", err)
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	reg := NewRegistry[int]()
	for _, n := range []string{"windows", "linux", "mac"} {
		reg.MustRegister(n, func(map[string]any) (int, error) { return 0, nil })
	}
	got := reg.Names()
	want := []string{"linux", "mac", "windows"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("names: expected %v got %v", want, got)
		}
	}
	if !reg.Has("mac") || reg.Has("bsd") {
		t.Fatal("unexpected Has result")
	}
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := NewRegistry[int]()
	reg.MustRegister("a", func(map[string]any) (int, error) { return 0, nil })
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic")
		}
	}()
	reg.MustRegister("a", func(map[string]any) (int, error) { return 0, nil })
}

func TestDecodeWeakTypes(t *testing.T) {
	var c sampleConf
	if err := Decode(map[string]any{"label": "x", "size": "3"}, &c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.Size != 3 {
		t.Fatalf("expected 3 got %d", c.Size)
	}
}
