package schemalenssdk

import (
	"context"

	"github.com/schemalens/schemalens/internal/domain"
	"github.com/schemalens/schemalens/internal/infra/jsoncodec"
)

// Failure is one structural validation failure as reported by the engine.
type Failure struct {
	InstancePath string
	SchemaPath   string
	Message      string
}

// Diagnostic is a fully enriched validation failure.
type Diagnostic struct {
	InstancePath  string
	SchemaPath    string
	Message       string
	Keyword       string
	InstanceValue any
	SchemaValue   any
	Context       map[string]any
	Annotations   map[string]any
	Suggestions   []string
	Fix           *FixPreview
}

// PatchOperation is a single RFC 6902 operation.
type PatchOperation struct {
	Op    string
	Path  string
	Value any
}

// FixPreview is a machine-applicable remediation with the patched instance.
type FixPreview struct {
	Patch   []PatchOperation
	Preview any
}

// CompileSchema compiles a schema document under the configured draft.
func (c *Client) CompileSchema(ctx context.Context, document []byte) (*Schema, error) {
	return c.CompileSchemaWithDraft(ctx, document, c.cfg.Draft)
}

// CompileSchemaWithDraft compiles a schema document under an explicit draft.
func (c *Client) CompileSchemaWithDraft(ctx context.Context, document []byte, draft Draft) (*Schema, error) {
	parsed, err := toDomainDraft(draft)
	if err != nil {
		return nil, err
	}
	compiled, err := c.compile.Compile(ctx, document, parsed)
	if err != nil {
		return nil, mapCoreErr(err)
	}
	return &Schema{compiled: compiled}, nil
}

// DetectDraft reports the draft a schema document declares via $schema.
// Documents without a recognizable $schema report the newest supported draft.
func (c *Client) DetectDraft(document []byte) (Draft, error) {
	value, err := jsoncodec.Codec{}.Decode(document)
	if err != nil {
		return "", mapCoreErr(err)
	}
	return Draft(domain.DetectDraft(value)), nil
}

// Validate reports whether the instance conforms. Structural failures come
// back as a *ValidationFailure carrying the raw failure list.
func (c *Client) Validate(ctx context.Context, schema *Schema, instance []byte) error {
	failures, err := c.service.ValidateDetailed(ctx, schema.compiled, instance)
	if err != nil {
		return mapCoreErr(err)
	}
	if len(failures) == 0 {
		return nil
	}
	return &ValidationFailure{Failures: toFailures(failures)}
}

// ValidateDetailed returns the engine's raw failures. An empty result means
// the instance is valid.
func (c *Client) ValidateDetailed(ctx context.Context, schema *Schema, instance []byte) ([]Failure, error) {
	failures, err := c.service.ValidateDetailed(ctx, schema.compiled, instance)
	if err != nil {
		return nil, mapCoreErr(err)
	}
	return toFailures(failures), nil
}

// ValidateVerbose returns one enriched diagnostic per failure, with fix
// previews attached when enabled and derivable.
func (c *Client) ValidateVerbose(ctx context.Context, schema *Schema, instance []byte) ([]Diagnostic, error) {
	failures, err := c.service.ValidateVerbose(ctx, schema.compiled, instance)
	if err != nil {
		return nil, mapCoreErr(err)
	}
	out := make([]Diagnostic, 0, len(failures))
	for _, failure := range failures {
		out = append(out, toDiagnostic(failure))
	}
	return out, nil
}

// Valid treats unparsable instance text as a JSON null instead of reporting
// a parse error.
func (c *Client) Valid(ctx context.Context, schema *Schema, instance []byte) bool {
	return c.service.Valid(ctx, schema.compiled, instance)
}

func toFailures(failures []domain.RawFailure) []Failure {
	out := make([]Failure, 0, len(failures))
	for _, failure := range failures {
		out = append(out, Failure{
			InstancePath: failure.InstancePath,
			SchemaPath:   failure.SchemaPath,
			Message:      failure.Message,
		})
	}
	return out
}

func toDiagnostic(failure domain.EnrichedFailure) Diagnostic {
	diagnostic := Diagnostic{
		InstancePath:  failure.InstancePath,
		SchemaPath:    failure.SchemaPath,
		Message:       failure.Message,
		Keyword:       failure.Keyword,
		InstanceValue: failure.InstanceValue,
		SchemaValue:   failure.SchemaValue,
		Context:       failure.Context,
		Annotations:   failure.Annotations,
		Suggestions:   failure.Suggestions,
	}
	if failure.Fix != nil {
		fix := &FixPreview{Preview: failure.Fix.Preview}
		fix.Patch = make([]PatchOperation, 0, len(failure.Fix.Patch))
		for _, op := range failure.Fix.Patch {
			fix.Patch = append(fix.Patch, PatchOperation{Op: op.Op, Path: op.Path, Value: op.Value})
		}
		diagnostic.Fix = fix
	}
	return diagnostic
}
