package jsoncodec

import (
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/schemalens/schemalens/internal/domain"
)

// Codec decodes JSON text into the plain value trees the core traverses and
// encodes them back. Decode failures carry line/column positions when the
// underlying syntactic error locates the fault.
type Codec struct{}

func (Codec) Decode(data []byte) (any, error) {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return nil, parseError(data, err)
	}
	return value, nil
}

func (Codec) Encode(value any) ([]byte, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return data, nil
}

func parseError(data []byte, err error) *domain.ParseError {
	parseErr := &domain.ParseError{Msg: err.Error()}
	var syntactic *jsontext.SyntacticError
	if errors.As(err, &syntactic) {
		parseErr.Offset = syntactic.ByteOffset
		parseErr.Line, parseErr.Column = position(data, syntactic.ByteOffset)
	}
	return parseErr
}

func position(data []byte, offset int64) (line, column int) {
	if offset < 0 || offset > int64(len(data)) {
		return 0, 0
	}
	line, column = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return line, column
}
