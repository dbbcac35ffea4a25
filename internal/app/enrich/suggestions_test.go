package enrich

import (
	"strings"
	"testing"

	"github.com/schemalens/schemalens/internal/domain"
)

func TestGenerateSuggestionsNeverEmpty(t *testing.T) {
	keywords := []string{
		"type", "minimum", "maximum", "minLength", "maxLength", "pattern",
		"format", "required", "minItems", "maxItems", "enum", "const",
		"uniqueItems", "multipleOf", "contains", "unknown", "",
	}
	for _, keyword := range keywords {
		got := GenerateSuggestions(domain.RawFailure{}, keyword, float64(1))
		if len(got) == 0 {
			t.Fatalf("keyword %q: expected at least one suggestion", keyword)
		}
	}
}

func TestGenerateSuggestionsTemplates(t *testing.T) {
	tests := []struct {
		keyword     string
		schemaValue any
		want        string
	}{
		{keyword: "minimum", schemaValue: float64(18), want: "Value must be >= 18"},
		{keyword: "maximum", schemaValue: float64(100), want: "Value must be <= 100"},
		{keyword: "minLength", schemaValue: float64(2), want: "String must be at least 2 characters"},
		{keyword: "maxLength", schemaValue: float64(8), want: "String must be at most 8 characters"},
		{keyword: "pattern", schemaValue: "^[a-z]+$", want: "String must match pattern: ^[a-z]+$"},
		{keyword: "type", schemaValue: "integer", want: "Expected type: integer"},
		{keyword: "required", schemaValue: []any{"name"}, want: "Add the missing required property"},
		{keyword: "minItems", schemaValue: float64(1), want: "Array must have at least 1 items"},
		{keyword: "maxItems", schemaValue: float64(4), want: "Array must have at most 4 items"},
		{keyword: "enum", schemaValue: []any{"a", "b"}, want: `Value must be one of: ["a","b"]`},
		{keyword: "const", schemaValue: "fixed", want: `Value must be exactly: "fixed"`},
		{keyword: "uniqueItems", schemaValue: true, want: "Array items must be unique"},
		{keyword: "multipleOf", schemaValue: float64(5), want: "Value must be a multiple of 5"},
	}
	for _, tt := range tests {
		got := GenerateSuggestions(domain.RawFailure{}, tt.keyword, tt.schemaValue)
		if len(got) != 1 || got[0] != tt.want {
			t.Fatalf("keyword %q: expected [%q], got %v", tt.keyword, tt.want, got)
		}
	}
}

func TestGenerateSuggestionsFormatEmail(t *testing.T) {
	failure := domain.RawFailure{Message: `"nope" is not a valid email address`}
	got := GenerateSuggestions(failure, domain.KeywordFormat, "email")
	if len(got) != 1 || !strings.Contains(got[0], "user@domain.com") {
		t.Fatalf("expected email hint, got %v", got)
	}

	got = GenerateSuggestions(domain.RawFailure{Message: "bad date"}, domain.KeywordFormat, "date")
	if len(got) != 1 || got[0] != "Check the format requirements" {
		t.Fatalf("expected generic format hint, got %v", got)
	}
}

func TestGenerateSuggestionsFallbackBundle(t *testing.T) {
	failure := domain.RawFailure{Message: "value does not contain a match"}
	got := GenerateSuggestions(failure, "contains", map[string]any{"type": "number"})
	if len(got) != 5 {
		t.Fatalf("expected 5 fallback suggestions, got %d: %v", len(got), got)
	}
	if got[0] != "Validation failed for 'contains' constraint" {
		t.Fatalf("unexpected first suggestion: %q", got[0])
	}
	if !strings.HasPrefix(got[1], "Expected: ") {
		t.Fatalf("unexpected second suggestion: %q", got[1])
	}
	if got[4] != "Error details: value does not contain a match" {
		t.Fatalf("expected echoed message, got %q", got[4])
	}
}

func TestGenerateSuggestionsFallbackSkipsLongMessage(t *testing.T) {
	failure := domain.RawFailure{Message: strings.Repeat("x", 200)}
	got := GenerateSuggestions(failure, "contains", nil)
	if len(got) != 4 {
		t.Fatalf("expected long message to be dropped, got %d suggestions", len(got))
	}
}
