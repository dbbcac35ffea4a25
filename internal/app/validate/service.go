package validate

import (
	"context"

	"github.com/schemalens/schemalens/internal/domain"
)

// Service runs instances against a compiled schema at three levels of
// detail: boolean, raw failures, and enriched diagnostics. A nil fixer
// disables fix previews on the verbose path.
type Service struct {
	parser   Parser
	enricher Enricher
	fixer    Fixer
}

func NewService(parser Parser, enricher Enricher, fixer Fixer) *Service {
	return &Service{parser: parser, enricher: enricher, fixer: fixer}
}

// Validate reports only whether the instance conforms. Parse errors
// propagate; structural failures collapse to ErrValidationFailed.
func (s *Service) Validate(ctx context.Context, compiled *CompiledSchema, instance []byte) error {
	if compiled == nil || compiled.Validator == nil {
		return ErrCompiledSchemaRequired
	}
	value, err := s.decodeInstance(instance)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if compiled.Validator.IsValid(value) {
		return nil
	}
	return ErrValidationFailed
}

// ValidateDetailed returns the engine's raw failures without enrichment.
// An empty result means the instance is valid.
func (s *Service) ValidateDetailed(ctx context.Context, compiled *CompiledSchema, instance []byte) ([]domain.RawFailure, error) {
	if compiled == nil || compiled.Validator == nil {
		return nil, ErrCompiledSchemaRequired
	}
	value, err := s.decodeInstance(instance)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if compiled.Validator.IsValid(value) {
		return nil, nil
	}
	return compiled.Validator.IterErrors(value), nil
}

// ValidateVerbose returns one complete enriched record per raw failure.
// Enrichment itself never fails; fix previews are best-effort and omitted
// when they cannot be built.
func (s *Service) ValidateVerbose(ctx context.Context, compiled *CompiledSchema, instance []byte) ([]domain.EnrichedFailure, error) {
	if compiled == nil || compiled.Validator == nil {
		return nil, ErrCompiledSchemaRequired
	}
	value, err := s.decodeInstance(instance)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if compiled.Validator.IsValid(value) {
		return nil, nil
	}

	failures := compiled.Validator.IterErrors(value)
	enriched := s.enricher.EnrichAll(compiled.Document, value, failures)
	if s.fixer != nil {
		for i := range enriched {
			fix, err := s.fixer.BuildFix(ctx, compiled.Document, value, enriched[i])
			if err != nil {
				continue
			}
			enriched[i].Fix = fix
		}
	}
	return enriched, nil
}

// Valid treats unparsable instance text as a JSON null instead of surfacing
// a parse error. Callers that want the error use Validate.
func (s *Service) Valid(ctx context.Context, compiled *CompiledSchema, instance []byte) bool {
	if compiled == nil || compiled.Validator == nil {
		return false
	}
	value, err := s.parser.Decode(instance)
	if err != nil {
		value = nil
	}
	return compiled.Validator.IsValid(value)
}

func (s *Service) decodeInstance(instance []byte) (any, error) {
	if len(instance) == 0 {
		return nil, ErrInstanceRequired
	}
	return s.parser.Decode(instance)
}
