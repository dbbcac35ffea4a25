package jsonengine

import (
	"bytes"
	"context"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/schemalens/schemalens/internal/app/validate"
	"github.com/schemalens/schemalens/internal/domain"
)

const resourceURL = "schema.json"

// Engine adapts santhosh-tekuri/jsonschema as the structural validation
// engine. Format assertions are enabled so format failures reach the
// enrichment pipeline.
type Engine struct{}

func (Engine) Compile(ctx context.Context, document []byte, draft domain.Draft) (validate.Validator, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if engineDraft := toEngineDraft(draft); engineDraft != nil {
		compiler.Draft = engineDraft
	}

	if err := compiler.AddResource(resourceURL, bytes.NewReader(document)); err != nil {
		return nil, &domain.CompileError{Detail: err.Error()}
	}
	schema, err := compiler.Compile(resourceURL)
	if err != nil {
		return nil, &domain.CompileError{Detail: err.Error()}
	}
	return schemaValidator{schema: schema}, nil
}

func toEngineDraft(draft domain.Draft) *jsonschema.Draft {
	switch draft {
	case domain.Draft4:
		return jsonschema.Draft4
	case domain.Draft6:
		return jsonschema.Draft6
	case domain.Draft7:
		return jsonschema.Draft7
	case domain.Draft2019:
		return jsonschema.Draft2019
	case domain.Draft2020:
		return jsonschema.Draft2020
	default:
		return nil
	}
}

type schemaValidator struct {
	schema *jsonschema.Schema
}

func (v schemaValidator) IsValid(instance any) bool {
	return v.schema.Validate(instance) == nil
}

// IterErrors re-runs validation and flattens the engine's error tree into
// leaf failures, one per violated keyword occurrence.
func (v schemaValidator) IterErrors(instance any) []domain.RawFailure {
	err := v.schema.Validate(instance)
	if err == nil {
		return nil
	}
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []domain.RawFailure{{Message: err.Error()}}
	}
	return flatten(validationErr, nil)
}

func flatten(err *jsonschema.ValidationError, out []domain.RawFailure) []domain.RawFailure {
	if len(err.Causes) == 0 {
		return append(out, domain.RawFailure{
			InstancePath: err.InstanceLocation,
			SchemaPath:   err.KeywordLocation,
			Message:      err.Message,
		})
	}
	for _, cause := range err.Causes {
		out = flatten(cause, out)
	}
	return out
}
