package enrich

import (
	"fmt"
	"strings"

	"github.com/schemalens/schemalens/internal/domain"
)

// Raw engine messages longer than this are not echoed into suggestions.
const maxEchoedMessageLength = 200

// GenerateSuggestions produces remediation hints for a failure. Recognized
// keywords get one templated hint built from the literal constraint value;
// everything else gets a generic bundle, so the result is never empty.
func GenerateSuggestions(failure domain.RawFailure, keyword string, schemaValue any) []string {
	switch keyword {
	case domain.KeywordType:
		expected := unknownTypeSentinel
		if s, ok := schemaValue.(string); ok {
			expected = s
		}
		return []string{fmt.Sprintf("Expected type: %s", expected)}
	case domain.KeywordMinimum:
		return []string{fmt.Sprintf("Value must be >= %s", domain.FormatValue(schemaValue))}
	case domain.KeywordMaximum:
		return []string{fmt.Sprintf("Value must be <= %s", domain.FormatValue(schemaValue))}
	case domain.KeywordMinLength:
		return []string{fmt.Sprintf("String must be at least %s characters", domain.FormatValue(schemaValue))}
	case domain.KeywordMaxLength:
		return []string{fmt.Sprintf("String must be at most %s characters", domain.FormatValue(schemaValue))}
	case domain.KeywordPattern:
		return []string{fmt.Sprintf("String must match pattern: %s", domain.FormatScalar(schemaValue))}
	case domain.KeywordFormat:
		if strings.Contains(failure.Message, "email") {
			return []string{"Use valid email format: user@domain.com"}
		}
		return []string{"Check the format requirements"}
	case domain.KeywordRequired:
		return []string{"Add the missing required property"}
	case domain.KeywordMinItems:
		return []string{fmt.Sprintf("Array must have at least %s items", domain.FormatValue(schemaValue))}
	case domain.KeywordMaxItems:
		return []string{fmt.Sprintf("Array must have at most %s items", domain.FormatValue(schemaValue))}
	case domain.KeywordEnum:
		return []string{fmt.Sprintf("Value must be one of: %s", domain.FormatValue(schemaValue))}
	case domain.KeywordConst:
		return []string{fmt.Sprintf("Value must be exactly: %s", domain.FormatValue(schemaValue))}
	case domain.KeywordUnique:
		return []string{"Array items must be unique"}
	case domain.KeywordMultipleOf:
		return []string{fmt.Sprintf("Value must be a multiple of %s", domain.FormatValue(schemaValue))}
	default:
		suggestions := []string{
			fmt.Sprintf("Validation failed for '%s' constraint", keyword),
			fmt.Sprintf("Expected: %s", domain.FormatValue(schemaValue)),
			"Check the schema documentation for this constraint",
			"Verify your data matches the expected format",
		}
		if failure.Message != "" && len(failure.Message) < maxEchoedMessageLength {
			suggestions = append(suggestions, fmt.Sprintf("Error details: %s", failure.Message))
		}
		return suggestions
	}
}
