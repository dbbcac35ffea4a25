package domain

import "strings"

// Canonical JSON Schema keywords the enrichment engine recognizes. Anything
// outside this set still flows through classification verbatim so callers
// never lose the raw keyword name.
const (
	KeywordType       = "type"
	KeywordMinimum    = "minimum"
	KeywordMaximum    = "maximum"
	KeywordMinLength  = "minLength"
	KeywordMaxLength  = "maxLength"
	KeywordPattern    = "pattern"
	KeywordFormat     = "format"
	KeywordRequired   = "required"
	KeywordMinItems   = "minItems"
	KeywordMaxItems   = "maxItems"
	KeywordEnum       = "enum"
	KeywordConst      = "const"
	KeywordUnique     = "uniqueItems"
	KeywordMultipleOf = "multipleOf"

	KeywordUnknown = "unknown"
)

var recognizedKeywords = map[string]struct{}{
	KeywordType:       {},
	KeywordMinimum:    {},
	KeywordMaximum:    {},
	KeywordMinLength:  {},
	KeywordMaxLength:  {},
	KeywordPattern:    {},
	KeywordFormat:     {},
	KeywordRequired:   {},
	KeywordMinItems:   {},
	KeywordMaxItems:   {},
	KeywordEnum:       {},
	KeywordConst:      {},
	KeywordUnique:     {},
	KeywordMultipleOf: {},
}

// ClassifyKeyword maps a schema path to the violated keyword: the final
// slash-delimited segment. Unrecognized segments pass through verbatim; only
// an empty schema path classifies as "unknown".
func ClassifyKeyword(schemaPath string) string {
	if schemaPath == "" {
		return KeywordUnknown
	}
	segment := schemaPath
	if idx := strings.LastIndex(schemaPath, "/"); idx >= 0 {
		segment = schemaPath[idx+1:]
	}
	if segment == "" {
		return KeywordUnknown
	}
	return segment
}

// IsRecognizedKeyword reports whether the keyword belongs to the fixed
// vocabulary with dedicated enrichment branches.
func IsRecognizedKeyword(keyword string) bool {
	_, ok := recognizedKeywords[keyword]
	return ok
}
