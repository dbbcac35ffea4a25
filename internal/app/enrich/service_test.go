package enrich

import (
	"testing"

	"github.com/schemalens/schemalens/internal/domain"
)

func TestEnrichProducesCompleteRecord(t *testing.T) {
	schema := personSchema()
	instance := map[string]any{"name": "A"}
	failure := domain.RawFailure{
		InstancePath: "/name",
		SchemaPath:   "/properties/name/minLength",
		Message:      "length must be >= 2, but got 1",
	}

	enriched := NewEnricher().Enrich(schema, instance, failure)
	if enriched.Keyword != "minLength" {
		t.Fatalf("expected minLength, got %q", enriched.Keyword)
	}
	if enriched.InstanceValue != "A" {
		t.Fatalf("expected instance value A, got %v", enriched.InstanceValue)
	}
	if enriched.SchemaValue != float64(2) {
		t.Fatalf("expected schema value 2, got %v", enriched.SchemaValue)
	}
	if enriched.Context["actual_length"] != 1 {
		t.Fatalf("expected actual_length 1, got %v", enriched.Context["actual_length"])
	}
	if len(enriched.Suggestions) == 0 {
		t.Fatal("expected suggestions")
	}
	if enriched.Annotations["error_keyword"] != "minLength" {
		t.Fatalf("expected error_keyword annotation, got %v", enriched.Annotations["error_keyword"])
	}
}

func TestEnrichUnresolvableInstancePath(t *testing.T) {
	failure := domain.RawFailure{InstancePath: "/ghost", SchemaPath: "/required"}
	enriched := NewEnricher().Enrich(personSchema(), map[string]any{}, failure)
	if enriched.InstanceValue != nil {
		t.Fatalf("expected nil instance value, got %v", enriched.InstanceValue)
	}
	if enriched.Context["actual"] != "missing required property" {
		t.Fatalf("unexpected actual: %v", enriched.Context["actual"])
	}
}

func TestEnrichAllPreservesOrder(t *testing.T) {
	failures := []domain.RawFailure{
		{SchemaPath: "/required"},
		{SchemaPath: "/properties/name/minLength", InstancePath: "/name"},
	}
	enriched := NewEnricher().EnrichAll(personSchema(), map[string]any{"name": "A"}, failures)
	if len(enriched) != 2 {
		t.Fatalf("expected 2 records, got %d", len(enriched))
	}
	if enriched[0].Keyword != "required" || enriched[1].Keyword != "minLength" {
		t.Fatalf("expected order preserved, got %q then %q", enriched[0].Keyword, enriched[1].Keyword)
	}
}

func TestEnrichAllEmpty(t *testing.T) {
	if got := NewEnricher().EnrichAll(nil, nil, nil); got != nil {
		t.Fatalf("expected nil for no failures, got %v", got)
	}
}
