package enrich

import (
	"reflect"
	"testing"

	"github.com/schemalens/schemalens/internal/domain"
)

func personSchema() any {
	return map[string]any{
		"type":     "object",
		"required": []any{"name"},
		"properties": map[string]any{
			"name": map[string]any{
				"type":      "string",
				"minLength": float64(2),
				"pattern":   "^[A-Z]",
			},
			"age": map[string]any{
				"type":    "integer",
				"minimum": float64(0),
			},
		},
	}
}

func TestExtractConstraintDirectKeyword(t *testing.T) {
	failure := domain.RawFailure{SchemaPath: "/properties/name/minLength"}
	got := ExtractConstraint(personSchema(), failure)
	if got != float64(2) {
		t.Fatalf("expected 2, got %v", got)
	}
}

func TestExtractConstraintTypeReadsParent(t *testing.T) {
	failure := domain.RawFailure{SchemaPath: "/properties/age/type"}
	got := ExtractConstraint(personSchema(), failure)
	if got != "integer" {
		t.Fatalf("expected integer, got %v", got)
	}
}

func TestExtractConstraintPatternReadsParent(t *testing.T) {
	failure := domain.RawFailure{SchemaPath: "/properties/name/pattern"}
	got := ExtractConstraint(personSchema(), failure)
	if got != "^[A-Z]" {
		t.Fatalf("expected pattern, got %v", got)
	}
}

func TestExtractConstraintRequiredAtRoot(t *testing.T) {
	failure := domain.RawFailure{SchemaPath: "/required"}
	got := ExtractConstraint(personSchema(), failure)
	if !reflect.DeepEqual(got, []any{"name"}) {
		t.Fatalf("expected required list, got %v", got)
	}
}

func TestExtractConstraintUnresolvablePath(t *testing.T) {
	failure := domain.RawFailure{SchemaPath: "/properties/missing/minimum"}
	got := ExtractConstraint(personSchema(), failure)
	if got != "unknown constraint" {
		t.Fatalf("expected unknown constraint sentinel, got %v", got)
	}
}

func TestExtractConstraintUnrecognizedKeywordVerbatim(t *testing.T) {
	schema := map[string]any{"contains": map[string]any{"type": "number"}}
	failure := domain.RawFailure{SchemaPath: "/contains"}
	got := ExtractConstraint(schema, failure)
	if !reflect.DeepEqual(got, map[string]any{"type": "number"}) {
		t.Fatalf("expected contains subschema verbatim, got %v", got)
	}
}
