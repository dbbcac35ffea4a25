package enrich

import "github.com/schemalens/schemalens/internal/domain"

// Sentinels returned when a constraint value cannot be located. Callers key
// off these strings, so they are part of the output contract.
const (
	unknownTypeSentinel       = "unknown"
	unknownPatternSentinel    = "unknown pattern"
	unknownConstraintSentinel = "unknown constraint"
)

// ExtractConstraint locates the literal constraint value behind a failure.
//
// Most keywords sit directly at the failure's schema path. The engine's path
// convention for type, pattern and required points at the keyword name
// itself, so their literal value is read off the parent object instead.
func ExtractConstraint(schema any, failure domain.RawFailure) any {
	node, ok := domain.ResolvePointer(schema, failure.SchemaPath)
	if !ok {
		return unknownConstraintSentinel
	}

	keyword := domain.ClassifyKeyword(failure.SchemaPath)
	switch keyword {
	case domain.KeywordMinimum, domain.KeywordMaximum,
		domain.KeywordMinLength, domain.KeywordMaxLength,
		domain.KeywordMinItems, domain.KeywordMaxItems,
		domain.KeywordConst, domain.KeywordEnum, domain.KeywordMultipleOf:
		return node
	case domain.KeywordType:
		if value, ok := parentProperty(schema, failure.SchemaPath, domain.KeywordType); ok {
			return value
		}
		return unknownTypeSentinel
	case domain.KeywordPattern:
		if value, ok := parentProperty(schema, failure.SchemaPath, domain.KeywordPattern); ok {
			return value
		}
		return unknownPatternSentinel
	case domain.KeywordRequired:
		if value, ok := parentProperty(schema, failure.SchemaPath, domain.KeywordRequired); ok {
			return value
		}
		return []any{}
	default:
		return node
	}
}

func parentProperty(schema any, schemaPath, property string) (any, bool) {
	parent, ok := domain.ResolvePointer(schema, domain.ParentPointer(schemaPath))
	if !ok {
		return nil, false
	}
	object, ok := parent.(map[string]any)
	if !ok {
		return nil, false
	}
	value, ok := object[property]
	return value, ok
}
