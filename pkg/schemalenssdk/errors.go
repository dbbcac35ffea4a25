package schemalenssdk

import (
	"errors"
	"fmt"

	"github.com/schemalens/schemalens/internal/domain"
)

var (
	ErrInvalidDraft     = errors.New("schemalens-sdk: invalid draft")
	ErrRegistryNotOpen  = errors.New("schemalens-sdk: registry is not open")
	ErrSchemaNotFound   = errors.New("schemalens-sdk: schema not found")
	ErrValidationFailed = errors.New("schemalens-sdk: instance does not conform to schema")
)

// ParseError reports malformed JSON or YAML text. Line and Column are
// one-based and zero when the decoder could not locate the fault.
type ParseError struct {
	Message string
	Line    int
	Column  int
	Offset  int64
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid input: %s (line %d, column %d)", e.Message, e.Line, e.Column)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// CompileError reports a schema the validation engine rejected.
type CompileError struct {
	Detail string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("schema compilation failed: %s", e.Detail)
}

// ValidationFailure carries the structural failures behind a failed Validate
// call. It matches ErrValidationFailed under errors.Is.
type ValidationFailure struct {
	Failures []Failure
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("instance does not conform to schema (%d failure(s))", len(e.Failures))
}

func (e *ValidationFailure) Is(target error) bool {
	return target == ErrValidationFailed
}

// mapCoreErr rewrites internal error types into their public counterparts so
// callers can use errors.As without reaching into internal packages.
func mapCoreErr(err error) error {
	if err == nil {
		return nil
	}
	var parseErr *domain.ParseError
	if errors.As(err, &parseErr) {
		return &ParseError{
			Message: parseErr.Msg,
			Line:    parseErr.Line,
			Column:  parseErr.Column,
			Offset:  parseErr.Offset,
		}
	}
	var compileErr *domain.CompileError
	if errors.As(err, &compileErr) {
		return &CompileError{Detail: compileErr.Detail}
	}
	return err
}
