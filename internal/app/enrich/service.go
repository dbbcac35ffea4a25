package enrich

import "github.com/schemalens/schemalens/internal/domain"

// Enricher turns raw engine failures into self-describing diagnostics. All of
// its work is pure traversal over immutable decoded documents, so a single
// value is safe for concurrent use.
type Enricher struct{}

func NewEnricher() Enricher {
	return Enricher{}
}

// Enrich reconstructs the full diagnostic record for one failure. Lookups
// that miss degrade to sentinels rather than erroring; the result is always a
// complete record.
func (e Enricher) Enrich(schema, instance any, failure domain.RawFailure) domain.EnrichedFailure {
	keyword := domain.ClassifyKeyword(failure.SchemaPath)
	instanceValue, _ := domain.ResolvePointer(instance, failure.InstancePath)
	schemaValue := ExtractConstraint(schema, failure)

	return domain.EnrichedFailure{
		RawFailure:    failure,
		Keyword:       keyword,
		InstanceValue: instanceValue,
		SchemaValue:   schemaValue,
		Context:       BuildContext(failure, instanceValue, schemaValue, keyword),
		Annotations:   ExtractAnnotations(schema, failure),
		Suggestions:   GenerateSuggestions(failure, keyword, schemaValue),
	}
}

// EnrichAll enriches every failure in order.
func (e Enricher) EnrichAll(schema, instance any, failures []domain.RawFailure) []domain.EnrichedFailure {
	if len(failures) == 0 {
		return nil
	}
	enriched := make([]domain.EnrichedFailure, 0, len(failures))
	for _, failure := range failures {
		enriched = append(enriched, e.Enrich(schema, instance, failure))
	}
	return enriched
}
