package catalog

import (
	"strings"
	"testing"
)

func TestPickFallbackBucketPriority(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"Tell me about asteroid Bennu", "asteroid"},
		{"any NEO news today?", "asteroid"},
		{"Tell me about Mars", "Mars"},
		{"when is the next lunar eclipse", "Moon"},
		{"how do stars form", "stars"},
		{"is there any danger right now", "scores"},
		// "asteroid risk" matches the asteroid bucket first.
		{"asteroid risk levels", "asteroid"},
	}

	for _, tt := range tests {
		got := PickFallback(tt.message)
		if !strings.Contains(got, tt.want) {
			t.Fatalf("PickFallback(%q) = %q, want text containing %q", tt.message, got, tt.want)
		}
	}
}

func TestPickFallbackGeneric(t *testing.T) {
	got := PickFallback("hello there")
	if !strings.Contains(got, "operational") {
		t.Fatalf("expected generic operational message, got %q", got)
	}
}

func TestPickFallbackCaseInsensitive(t *testing.T) {
	if PickFallback("ASTEROID") != PickFallback("asteroid") {
		t.Fatal("keyword matching should be case-insensitive")
	}
}

func TestNextModel(t *testing.T) {
	models := FallbackModels()
	if len(models) == 0 {
		t.Fatal("fallback model list must not be empty")
	}

	if got := NextModel(models[0]); got != models[1] {
		t.Fatalf("NextModel(%q) = %q, want %q", models[0], got, models[1])
	}
	if got := NextModel("unknown-model"); got != models[0] {
		t.Fatalf("NextModel(unknown) = %q, want first entry %q", got, models[0])
	}
}

func TestLookupAsteroidCaseAndTrim(t *testing.T) {
	base, ok := LookupAsteroid("Bennu")
	if !ok {
		t.Fatal("expected Bennu to be in the catalog")
	}

	for _, name := range []string{" bennu ", "BENNU", "bennu"} {
		got, ok := LookupAsteroid(name)
		if !ok || got != base {
			t.Fatalf("LookupAsteroid(%q) should resolve to the same fact sheet", name)
		}
	}
}

func TestLookupAsteroidUnknownEchoesName(t *testing.T) {
	got, ok := LookupAsteroid(" 2024 XY99 ")
	if ok {
		t.Fatal("unknown asteroid should not report a catalog hit")
	}
	if !strings.Contains(got, "2024 XY99") {
		t.Fatalf("unknown-asteroid template should echo the trimmed name, got %q", got)
	}
	if !strings.Contains(got, "under analysis") {
		t.Fatalf("unknown-asteroid template should mention analysis, got %q", got)
	}
}
