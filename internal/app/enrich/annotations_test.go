package enrich

import (
	"testing"

	"github.com/schemalens/schemalens/internal/domain"
)

func TestExtractAnnotationsInheritsParent(t *testing.T) {
	schema := map[string]any{
		"type":  "object",
		"title": "Parent",
		"properties": map[string]any{
			"age": map[string]any{
				"type":    "integer",
				"minimum": float64(0),
				"title":   "Age",
			},
		},
	}
	failure := domain.RawFailure{
		InstancePath: "/age",
		SchemaPath:   "/properties/age/minimum",
	}

	annotations := ExtractAnnotations(schema, failure)
	// The failing node /properties/age/minimum is a number, so the node-level
	// annotations come up empty; the parent node supplies title via prefix.
	if annotations["parent_title"] != "Age" {
		t.Fatalf("expected parent_title Age, got %v", annotations["parent_title"])
	}
	if annotations["error_keyword"] != "minimum" {
		t.Fatalf("expected error_keyword minimum, got %v", annotations["error_keyword"])
	}
	if annotations["validation_failed_at"] != "/age" {
		t.Fatalf("expected validation_failed_at /age, got %v", annotations["validation_failed_at"])
	}
}

func TestExtractAnnotationsNodeLevel(t *testing.T) {
	schema := map[string]any{
		"title": "Root",
		"properties": map[string]any{
			"name": map[string]any{
				"type":        "string",
				"title":       "Name",
				"description": "Display name",
				"examples":    []any{"Ada"},
				"default":     "anonymous",
			},
		},
	}
	failure := domain.RawFailure{
		InstancePath: "/name",
		SchemaPath:   "/properties/name",
	}

	annotations := ExtractAnnotations(schema, failure)
	if annotations["title"] != "Name" {
		t.Fatalf("expected title Name, got %v", annotations["title"])
	}
	if annotations["description"] != "Display name" {
		t.Fatalf("expected description, got %v", annotations["description"])
	}
	if annotations["default"] != "anonymous" {
		t.Fatalf("expected default, got %v", annotations["default"])
	}
	if _, ok := annotations["examples"]; !ok {
		t.Fatal("expected examples annotation")
	}
	// Parent is /properties, a plain container without annotations.
	if _, ok := annotations["parent_title"]; ok {
		t.Fatal("did not expect parent_title from a container node")
	}
}

func TestExtractAnnotationsAlwaysSetsMetadata(t *testing.T) {
	annotations := ExtractAnnotations(map[string]any{}, domain.RawFailure{SchemaPath: "/nope/missing"})
	if annotations["error_keyword"] != "missing" {
		t.Fatalf("expected error_keyword missing, got %v", annotations["error_keyword"])
	}
	if annotations["validation_failed_at"] != "" {
		t.Fatalf("expected empty instance path echo, got %v", annotations["validation_failed_at"])
	}
}
