package enrich

import (
	"context"

	"github.com/schemalens/schemalens/internal/domain"
)

// FixService derives machine-applicable remediations from enriched failures.
// Only failures the schema itself knows how to repair produce one: a missing
// required property whose subschema declares a default.
type FixService struct {
	codec   Codec
	patcher Patcher
}

func NewFixService(codec Codec, patcher Patcher) *FixService {
	return &FixService{codec: codec, patcher: patcher}
}

// BuildFix returns a patch plus a repaired-instance preview, or nil when the
// failure has no schema-driven fix.
func (s *FixService) BuildFix(ctx context.Context, schema, instance any, failure domain.EnrichedFailure) (*domain.FixPreview, error) {
	if failure.Keyword != domain.KeywordRequired {
		return nil, nil
	}
	required, ok := failure.SchemaValue.([]any)
	if !ok {
		return nil, nil
	}

	target, _ := domain.ResolvePointer(instance, failure.InstancePath)
	object, ok := target.(map[string]any)
	if !ok {
		return nil, nil
	}

	properties := schemaProperties(schema, failure.SchemaPath)
	var ops []domain.PatchOperation
	for _, entry := range required {
		name, ok := entry.(string)
		if !ok {
			continue
		}
		if _, present := object[name]; present {
			continue
		}
		property, ok := properties[name].(map[string]any)
		if !ok {
			continue
		}
		fallback, ok := property["default"]
		if !ok {
			continue
		}
		ops = append(ops, domain.PatchOperation{
			Op:    "add",
			Path:  joinPointer(failure.InstancePath, name),
			Value: fallback,
		})
	}
	if len(ops) == 0 {
		return nil, nil
	}

	preview, err := s.applyOps(ctx, instance, ops)
	if err != nil {
		return nil, err
	}
	return &domain.FixPreview{Patch: ops, Preview: preview}, nil
}

func (s *FixService) applyOps(ctx context.Context, instance any, ops []domain.PatchOperation) (any, error) {
	doc, err := s.codec.Encode(instance)
	if err != nil {
		return nil, err
	}
	patch, err := s.codec.Encode(ops)
	if err != nil {
		return nil, err
	}
	patched, err := s.patcher.Apply(ctx, doc, patch)
	if err != nil {
		return nil, err
	}
	return s.codec.Decode(patched)
}

// schemaProperties finds the properties object adjacent to a required
// failure's schema path.
func schemaProperties(schema any, schemaPath string) map[string]any {
	parent, ok := domain.ResolvePointer(schema, domain.ParentPointer(schemaPath))
	if !ok {
		return nil
	}
	object, ok := parent.(map[string]any)
	if !ok {
		return nil
	}
	properties, _ := object["properties"].(map[string]any)
	return properties
}

func joinPointer(base, segment string) string {
	if base == "" || base == "/" {
		return "/" + segment
	}
	return base + "/" + segment
}
