package tool

import (
	"slices"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&Tool{Name: "alpha"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := r.Get("alpha"); !ok {
		t.Error("expected registered tool to resolve")
	}

	if _, ok := r.Get("missing"); ok {
		t.Error("expected miss for unregistered name")
	}
}

func TestRegistry_DuplicateManualRegistrationFails(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&Tool{Name: "alpha"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := r.Register(&Tool{Name: "alpha"}); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestRegistry_ManualWinsOverDerived(t *testing.T) {
	r := NewRegistry()

	manual := &Tool{Name: "deploy", Description: "manual"}
	if err := r.Register(manual); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r.AddDerived(
		&Tool{Name: "deploy", Description: "derived"},
		&Tool{Name: "status", Description: "derived"},
	)

	got, _ := r.Get("deploy")
	if got != manual {
		t.Errorf("expected the manual entry to survive, got %+v", got)
	}

	if r.Len() != 2 {
		t.Errorf("expected 2 tools, got %d", r.Len())
	}
}

func TestRegistry_AllInRegistrationOrder(t *testing.T) {
	r := NewRegistry()

	r.AddDerived(&Tool{Name: "zeta"}, &Tool{Name: "alpha"})

	if err := r.Register(&Tool{Name: "mid"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var names []string
	for tl := range r.All() {
		names = append(names, tl.Name)
	}

	if !slices.Equal(names, []string{"zeta", "alpha", "mid"}) {
		t.Errorf("expected registration order, got %v", names)
	}
}

func TestRegistry_RejectsUnnamedTool(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(&Tool{}); err == nil {
		t.Error("expected unnamed tool to be rejected")
	}

	if err := r.Register(nil); err == nil {
		t.Error("expected nil tool to be rejected")
	}
}

func TestCapability_SetAndRestore(t *testing.T) {
	t.Cleanup(func() { SetCurrent("") })

	SetCurrent("2024-11-05")

	if Current() != "2024-11-05" {
		t.Errorf("expected override, got %q", Current())
	}

	SetCurrent("")

	if Current() != DefaultVersion {
		t.Errorf("expected default restored, got %q", Current())
	}
}

func TestSupportsStructured(t *testing.T) {
	for version, want := range map[string]bool{
		"2024-11-05":            false,
		"2025-03-26":            false,
		VersionStructuredOutput: true,
		"2026-01-01":            true,
	} {
		if got := supportsStructured(version); got != want {
			t.Errorf("supportsStructured(%q) = %t, expected %t",
				version, got, want)
		}
	}
}
