package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	registryapp "github.com/schemalens/schemalens/internal/app/registry"
	validateapp "github.com/schemalens/schemalens/internal/app/validate"
	"github.com/schemalens/schemalens/internal/domain"
)

func TestNormalizeError(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantKind ErrorKind
	}{
		{err: registryapp.ErrSchemaNotFound, wantCode: ExitNotFound, wantKind: KindNotFound},
		{err: validateapp.ErrValidationFailed, wantCode: ExitValidationFailed, wantKind: KindValidationFailed},
		{err: validateapp.ErrSchemaDocumentRequired, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: validateapp.ErrCompiledSchemaRequired, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: validateapp.ErrInstanceRequired, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: registryapp.ErrNameRequired, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: registryapp.ErrInvalidName, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: registryapp.ErrDocumentRequired, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: domain.ErrUnknownDraft, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: &domain.ParseError{Msg: "bad json"}, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: &domain.CompileError{Detail: "bad schema"}, wantCode: ExitInvalid, wantKind: KindValidation},
		{err: errors.New("boom"), wantCode: ExitInternal, wantKind: KindInternal},
	}

	for _, tt := range tests {
		got := NormalizeError(tt.err)
		if got.Code != tt.wantCode {
			t.Fatalf("expected code %d, got %d for %v", tt.wantCode, got.Code, tt.err)
		}
		if got.Kind != tt.wantKind {
			t.Fatalf("expected kind %s, got %s for %v", tt.wantKind, got.Kind, tt.err)
		}
	}
}

func TestNormalizeErrorKeepsExitError(t *testing.T) {
	custom := ExitError{Code: ExitValidationFailed, Kind: KindValidationFailed, Message: "3 failures"}
	got := NormalizeError(custom)
	if got.Code != ExitValidationFailed {
		t.Fatalf("expected code %d, got %d", ExitValidationFailed, got.Code)
	}
	if got.Message != "3 failures" {
		t.Fatalf("expected message to survive, got %q", got.Message)
	}
}

func TestExitCode(t *testing.T) {
	if ExitCode(nil) != 0 {
		t.Fatalf("expected ExitCode(nil) == 0")
	}

	custom := ExitError{Code: 9, Kind: KindInternal, Message: "custom"}
	if ExitCode(custom) != 9 {
		t.Fatalf("expected ExitCode(custom) == 9")
	}
}

func TestWriteCLIErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	exitErr := ExitError{Code: ExitNotFound, Kind: KindNotFound, Message: "schema not found"}
	if err := writeCLIError(&buf, exitErr, true); err != nil {
		t.Fatalf("writeCLIError failed: %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, `"code": 3`) {
		t.Fatalf("expected code in output, got %s", output)
	}
	if !strings.Contains(output, `"kind": "not_found"`) {
		t.Fatalf("expected kind in output, got %s", output)
	}
}
