package slug

import (
	"context"
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Help Me", "help-me"},
		{"Help Me!!!", "help-me"},
		{"  Save the   Whales  ", "save-the-whales"},
		{"Café für Marées", "cafe-fur-marees"},
		{"MEDICAL--emergency", "medical-emergency"},
		{"---", "campaign"},
		{"", "campaign"},
		{"100% for Good", "100-for-good"},
		{"fund.raiser@2024", "fund-raiser-2024"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := Make(tt.title)
			if got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestMake_CapsLength(t *testing.T) {
	got := Make(strings.Repeat("a", 300))
	if len(got) > MaxLen {
		t.Errorf("slug length %d exceeds MaxLen %d", len(got), MaxLen)
	}
	if strings.HasSuffix(got, "-") || strings.HasPrefix(got, "-") {
		t.Errorf("slug %q has a dangling hyphen", got)
	}
}

func TestUnique_BaseFree(t *testing.T) {
	got, err := Unique(context.Background(), "help-me", takenSet())
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if got != "help-me" {
		t.Errorf("got %q, want %q", got, "help-me")
	}
}

func TestUnique_SuffixProbing(t *testing.T) {
	tests := []struct {
		name  string
		taken []string
		want  string
	}{
		{"one collision", []string{"help-me"}, "help-me-1"},
		{"two collisions", []string{"help-me", "help-me-1"}, "help-me-2"},
		{"gap reused", []string{"help-me", "help-me-2"}, "help-me-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unique(context.Background(), "help-me", takenSet(tt.taken...))
			if err != nil {
				t.Fatalf("Unique failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnique_Exhausted(t *testing.T) {
	all := func(ctx context.Context, s string) (bool, error) { return true, nil }
	if _, err := Unique(context.Background(), "help-me", all); err == nil {
		t.Error("expected error when every candidate is taken")
	}
}

func takenSet(slugs ...string) ExistsFunc {
	set := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		set[s] = true
	}
	return func(ctx context.Context, s string) (bool, error) {
		return set[s], nil
	}
}
