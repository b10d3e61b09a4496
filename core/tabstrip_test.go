package core

import "testing"

func TestSelfManagedSelection(t *testing.T) {
	var changes []string
	s := NewTabSelection([]string{"dashboard", "templates", "settings"}, "templates", func(v string) {
		changes = append(changes, v)
	})

	if got := s.Value(); got != "templates" {
		t.Fatalf("initial value = %q", got)
	}
	if !s.Activate("settings") {
		t.Fatal("declared value should activate")
	}
	if got := s.Value(); got != "settings" {
		t.Fatalf("value after activate = %q", got)
	}
	if len(changes) != 1 || changes[0] != "settings" {
		t.Fatalf("onChange calls = %v", changes)
	}
}

func TestSelectionRejectsUndeclaredValue(t *testing.T) {
	s := NewTabSelection([]string{"a", "b"}, "a", nil)
	if s.Activate("zzz") {
		t.Fatal("undeclared value must be rejected")
	}
	if got := s.Value(); got != "a" {
		t.Fatalf("value changed on rejected activation: %q", got)
	}
}

func TestSelectionUnknownDefaultFallsBackToFirst(t *testing.T) {
	s := NewTabSelection([]string{"a", "b"}, "nope", nil)
	if got := s.Value(); got != "a" {
		t.Fatalf("fallback value = %q", got)
	}
}

func TestSelectionSameValueIsNoOp(t *testing.T) {
	calls := 0
	s := NewTabSelection([]string{"a", "b"}, "a", func(string) { calls++ })
	if !s.Activate("a") {
		t.Fatal("re-activating the active value should report success")
	}
	if calls != 0 {
		t.Fatalf("onChange fired on no-op activation: %d", calls)
	}
}

func TestControlledSelectionNeverMutates(t *testing.T) {
	parent := "a"
	var requested []string
	s := NewControlledTabSelection([]string{"a", "b"},
		func() string { return parent },
		func(v string) { requested = append(requested, v) },
	)

	if !s.Activate("b") {
		t.Fatal("declared value should be accepted")
	}
	// The parent has not applied the request yet.
	if got := s.Value(); got != "a" {
		t.Fatalf("controlled value = %q, want parent-owned %q", got, "a")
	}
	if len(requested) != 1 || requested[0] != "b" {
		t.Fatalf("requests = %v", requested)
	}

	parent = "b"
	if got := s.Value(); got != "b" {
		t.Fatalf("value should follow parent, got %q", got)
	}
}

func TestControlledSelectionUndeclaredParentValue(t *testing.T) {
	s := NewControlledTabSelection([]string{"a", "b"}, func() string { return "ghost" }, nil)
	if got := s.Index(); got != -1 {
		t.Fatalf("index for undeclared parent value = %d", got)
	}
}

func TestActivateIndex(t *testing.T) {
	s := NewTabSelection([]string{"a", "b", "c"}, "", nil)
	if !s.ActivateIndex(2) {
		t.Fatal("in-range index should activate")
	}
	if got := s.Value(); got != "c" {
		t.Fatalf("value = %q", got)
	}
	if s.ActivateIndex(3) || s.ActivateIndex(-1) {
		t.Fatal("out-of-range index must be rejected")
	}
}
