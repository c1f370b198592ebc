package taxonomy

import (
	"reflect"
	"testing"
)

func TestDedupe_PreservesFirstOccurrenceAndCanonicalCasing(t *testing.T) {
	got := Dedupe([]string{"react", "Python", "REACT", "  ", "node.js"})
	want := []string{"React", "Python", "Node.js"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDedupe_KeepsUnknownSkillsVerbatim(t *testing.T) {
	got := Dedupe([]string{"COBOL", "cobol"})
	if !reflect.DeepEqual(got, []string{"COBOL"}) {
		t.Fatalf("expected [COBOL], got %v", got)
	}
}

func TestCategorize_OnlyNonEmptyCategories(t *testing.T) {
	got := Categorize([]string{"React", "AWS"})
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %v", got)
	}
	if !reflect.DeepEqual(got["Frontend"], []string{"React"}) {
		t.Fatalf("unexpected Frontend: %v", got["Frontend"])
	}
	if !reflect.DeepEqual(got["Cloud"], []string{"AWS"}) {
		t.Fatalf("unexpected Cloud: %v", got["Cloud"])
	}
}

func TestCategorize_TableOrderWithinCategory(t *testing.T) {
	got := Categorize([]string{"TypeScript", "React", "HTML"})
	want := []string{"React", "TypeScript", "HTML"}
	if !reflect.DeepEqual(got["Frontend"], want) {
		t.Fatalf("expected table order %v, got %v", want, got["Frontend"])
	}
}

func TestCanonical(t *testing.T) {
	if got := Canonical("machine learning"); got != "Machine Learning" {
		t.Fatalf("expected Machine Learning, got %q", got)
	}
	if got := Canonical(" Rust "); got != "Rust" {
		t.Fatalf("expected trimmed passthrough, got %q", got)
	}
}

func TestAll_CategoryOrder(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatalf("expected skills")
	}
	if all[0] != "React" {
		t.Fatalf("expected first skill React, got %s", all[0])
	}
}
