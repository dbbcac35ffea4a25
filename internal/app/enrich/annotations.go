package enrich

import "github.com/schemalens/schemalens/internal/domain"

// ExtractAnnotations pulls descriptive metadata off the failing schema node:
// title, description, examples and default when present, plus title and
// description inherited from the immediate parent under a parent_ prefix.
// There is no deeper ancestor walk. The error_keyword and
// validation_failed_at entries are always set.
func ExtractAnnotations(schema any, failure domain.RawFailure) map[string]any {
	annotations := map[string]any{}

	if node, ok := domain.ResolvePointer(schema, failure.SchemaPath); ok {
		if object, ok := node.(map[string]any); ok {
			copyAnnotation(annotations, object, "title", "title")
			copyAnnotation(annotations, object, "description", "description")
			copyAnnotation(annotations, object, "examples", "examples")
			copyAnnotation(annotations, object, "default", "default")
		}
	}

	parentPath := domain.ParentPointer(failure.SchemaPath)
	if parentPath != "" {
		if parent, ok := domain.ResolvePointer(schema, parentPath); ok {
			if object, ok := parent.(map[string]any); ok {
				copyAnnotation(annotations, object, "title", "parent_title")
				copyAnnotation(annotations, object, "description", "parent_description")
			}
		}
	}

	annotations["error_keyword"] = domain.ClassifyKeyword(failure.SchemaPath)
	annotations["validation_failed_at"] = failure.InstancePath

	return annotations
}

func copyAnnotation(dst map[string]any, src map[string]any, key, as string) {
	if value, ok := src[key]; ok {
		dst[as] = value
	}
}
