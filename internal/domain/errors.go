package domain

import "fmt"

// ParseError reports malformed JSON or YAML text. Line and Column are
// one-based and zero when the decoder could not locate the fault.
type ParseError struct {
	Msg    string
	Line   int
	Column int
	Offset int64
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid input: %s (line %d, column %d)", e.Msg, e.Line, e.Column)
	}
	return fmt.Sprintf("invalid input: %s", e.Msg)
}

// CompileError reports a schema the validation engine rejected. Detail
// carries the engine's message verbatim; the condition is terminal for that
// schema document.
type CompileError struct {
	Detail string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("schema compilation failed: %s", e.Detail)
}
