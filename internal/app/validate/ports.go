package validate

import (
	"context"

	"github.com/schemalens/schemalens/internal/domain"
)

// Engine compiles a schema document into a validator. Draft is resolved
// before compilation; the engine never re-branches on it afterwards.
type Engine interface {
	Compile(ctx context.Context, document []byte, draft domain.Draft) (Validator, error)
}

// Validator is the compiled-schema capability of the external validation
// engine. Implementations must be safe for concurrent read-only use.
type Validator interface {
	IsValid(instance any) bool
	IterErrors(instance any) []domain.RawFailure
}

type Parser interface {
	Decode(data []byte) (any, error)
}

type IDGenerator interface {
	NewID() (string, error)
}

type Enricher interface {
	EnrichAll(schema, instance any, failures []domain.RawFailure) []domain.EnrichedFailure
}

type Fixer interface {
	BuildFix(ctx context.Context, schema, instance any, failure domain.EnrichedFailure) (*domain.FixPreview, error)
}
