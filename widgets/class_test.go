package widgets

import "testing"

func TestMergeClassesSkipsEmptyAndDedupes(t *testing.T) {
	got := MergeClasses("a", "", "b", "", "a")
	if got != "a b" {
		t.Fatalf("merge = %q, want %q", got, "a b")
	}
}

func TestMergeClassesLaterGroupWins(t *testing.T) {
	got := MergeClasses("fg-text bold", "fg-accent")
	if got != "bold fg-accent" {
		t.Fatalf("merge = %q, want %q", got, "bold fg-accent")
	}
}

func TestMergeClassesSplitsFragments(t *testing.T) {
	got := MergeClasses("fg-muted bg-mantle", "bg-surface fg-muted")
	if got != "fg-muted bg-surface" {
		t.Fatalf("merge = %q, want %q", got, "fg-muted bg-surface")
	}
}

func TestMergeClassesOrderStable(t *testing.T) {
	got := MergeClasses("one", "two", "three", "two")
	if got != "one two three" {
		t.Fatalf("merge = %q, want %q", got, "one two three")
	}
}

func TestClassSetIgnoresUnknownClasses(t *testing.T) {
	style := DefaultClasses.Style("fg-text not-a-class")
	if style.Render("x") != DefaultClasses.Style("fg-text").Render("x") {
		t.Fatalf("unknown class should not change the resolved style")
	}
}

func TestClassSetLaterClassOverridesEarlier(t *testing.T) {
	a := DefaultClasses.Style("fg-text fg-error").Render("x")
	b := DefaultClasses.Style("fg-error").Render("x")
	if a != b {
		t.Fatalf("later foreground class should win: %q vs %q", a, b)
	}
}
