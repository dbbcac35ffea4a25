package validate

import (
	"context"
	"errors"
	"testing"

	"github.com/schemalens/schemalens/internal/domain"
)

type fakeEngine struct {
	validator Validator
	err       error
	gotDraft  domain.Draft
}

func (f *fakeEngine) Compile(ctx context.Context, document []byte, draft domain.Draft) (Validator, error) {
	f.gotDraft = draft
	if f.err != nil {
		return nil, f.err
	}
	return f.validator, nil
}

type fakeIDGen struct {
	id  string
	err error
}

func (f fakeIDGen) NewID() (string, error) {
	return f.id, f.err
}

func TestCompileRequiresDocument(t *testing.T) {
	service := NewCompileService(&fakeEngine{}, fakeParser{}, fakeIDGen{})
	_, err := service.Compile(context.Background(), nil, domain.DraftAuto)
	if !errors.Is(err, ErrSchemaDocumentRequired) {
		t.Fatalf("expected ErrSchemaDocumentRequired, got %v", err)
	}
}

func TestCompileResolvesAutoDraft(t *testing.T) {
	schema := map[string]any{"$schema": "http://json-schema.org/draft-07/schema#"}
	engine := &fakeEngine{validator: &fakeValidator{valid: true}}
	service := NewCompileService(engine, fakeParser{value: schema}, fakeIDGen{id: "01HANDLE"})

	compiled, err := service.Compile(context.Background(), []byte(`{}`), domain.DraftAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if compiled.Draft != domain.Draft7 {
		t.Fatalf("expected draft7, got %s", compiled.Draft)
	}
	if engine.gotDraft != domain.Draft7 {
		t.Fatalf("expected engine to receive draft7, got %s", engine.gotDraft)
	}
	if compiled.ID != "01HANDLE" {
		t.Fatalf("expected handle id, got %q", compiled.ID)
	}
}

func TestCompileKeepsExplicitDraft(t *testing.T) {
	schema := map[string]any{"$schema": "http://json-schema.org/draft-07/schema#"}
	engine := &fakeEngine{validator: &fakeValidator{valid: true}}
	service := NewCompileService(engine, fakeParser{value: schema}, fakeIDGen{id: "01HANDLE"})

	compiled, err := service.Compile(context.Background(), []byte(`{}`), domain.Draft4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if compiled.Draft != domain.Draft4 || engine.gotDraft != domain.Draft4 {
		t.Fatalf("expected explicit draft4, got %s / %s", compiled.Draft, engine.gotDraft)
	}
}

func TestCompilePropagatesParseError(t *testing.T) {
	parseErr := &domain.ParseError{Msg: "bad", Line: 3, Column: 7}
	service := NewCompileService(&fakeEngine{}, fakeParser{err: parseErr}, fakeIDGen{})
	_, err := service.Compile(context.Background(), []byte(`{`), domain.DraftAuto)
	var got *domain.ParseError
	if !errors.As(err, &got) || got.Line != 3 {
		t.Fatalf("expected parse error with position, got %v", err)
	}
}

func TestCompilePropagatesCompileError(t *testing.T) {
	compileErr := &domain.CompileError{Detail: "bad keyword"}
	service := NewCompileService(&fakeEngine{err: compileErr}, fakeParser{value: map[string]any{}}, fakeIDGen{})
	_, err := service.Compile(context.Background(), []byte(`{}`), domain.DraftAuto)
	var got *domain.CompileError
	if !errors.As(err, &got) {
		t.Fatalf("expected CompileError, got %v", err)
	}
}
