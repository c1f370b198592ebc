package matching

import (
	"reflect"
	"testing"
)

func TestMatch_CaseInsensitive(t *testing.T) {
	res := Match([]string{"python", "REACT"}, []string{"Python", "React", "SQL"})

	if res.MatchPercentage != 67 {
		t.Fatalf("expected 67, got %d", res.MatchPercentage)
	}
	if res.UserHas != 2 || res.TotalRequired != 3 {
		t.Fatalf("expected 2/3, got %d/%d", res.UserHas, res.TotalRequired)
	}
	if !reflect.DeepEqual(res.Matching, []string{"Python", "React"}) {
		t.Fatalf("unexpected matching: %v", res.Matching)
	}
	if !reflect.DeepEqual(res.Missing, []string{"SQL"}) {
		t.Fatalf("unexpected missing: %v", res.Missing)
	}
}

func TestMatch_EmptyTarget(t *testing.T) {
	res := Match([]string{"Python"}, nil)
	if res.MatchPercentage != 100 {
		t.Fatalf("expected 100 for empty target, got %d", res.MatchPercentage)
	}
	if res.TotalRequired != 0 {
		t.Fatalf("expected 0 required, got %d", res.TotalRequired)
	}
}

func TestMatch_EmptyUser(t *testing.T) {
	res := Match(nil, []string{"Python", "React"})
	if res.MatchPercentage != 0 {
		t.Fatalf("expected 0, got %d", res.MatchPercentage)
	}
	if len(res.Matching) != 0 || len(res.Missing) != 2 {
		t.Fatalf("expected all missing, got matching=%v missing=%v", res.Matching, res.Missing)
	}
}

func TestMatch_DuplicateTargetSkills(t *testing.T) {
	res := Match([]string{"Python"}, []string{"Python", "python", "PYTHON"})
	if res.TotalRequired != 1 {
		t.Fatalf("expected duplicates collapsed to 1, got %d", res.TotalRequired)
	}
	if res.MatchPercentage != 100 {
		t.Fatalf("expected 100, got %d", res.MatchPercentage)
	}
}

func TestMatch_Rounding(t *testing.T) {
	// 1 of 3 is 33.33, rounds to 33; 2 of 3 is 66.67, rounds to 67.
	if got := Match([]string{"a"}, []string{"a", "b", "c"}).MatchPercentage; got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	if got := Match([]string{"a", "b"}, []string{"a", "b", "c"}).MatchPercentage; got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
}
