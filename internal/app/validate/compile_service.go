package validate

import (
	"context"

	"github.com/schemalens/schemalens/internal/domain"
)

type CompileService struct {
	engine Engine
	parser Parser
	idGen  IDGenerator
}

func NewCompileService(engine Engine, parser Parser, idGen IDGenerator) *CompileService {
	return &CompileService{engine: engine, parser: parser, idGen: idGen}
}

// Compile parses and compiles a schema document. DraftAuto resolves against
// the document's $schema property here, once; downstream code never branches
// on draft again.
func (s *CompileService) Compile(ctx context.Context, document []byte, draft domain.Draft) (*CompiledSchema, error) {
	if len(document) == 0 {
		return nil, ErrSchemaDocumentRequired
	}

	value, err := s.parser.Decode(document)
	if err != nil {
		return nil, err
	}

	if draft == "" || draft == domain.DraftAuto {
		draft = domain.DetectDraft(value)
	}

	validator, err := s.engine.Compile(ctx, document, draft)
	if err != nil {
		return nil, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return nil, err
	}

	return &CompiledSchema{
		ID:        id,
		Draft:     draft,
		Document:  value,
		Validator: validator,
	}, nil
}

// Check compiles a document without retaining the result. Registry writes
// use it to admit only schemas the engine accepts.
func (s *CompileService) Check(ctx context.Context, document []byte, draft domain.Draft) (domain.Draft, error) {
	compiled, err := s.Compile(ctx, document, draft)
	if err != nil {
		return "", err
	}
	return compiled.Draft, nil
}
