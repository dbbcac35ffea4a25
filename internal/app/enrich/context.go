package enrich

import (
	"fmt"

	"github.com/schemalens/schemalens/internal/domain"
)

// BuildContext synthesizes the expected-vs-actual fact sheet for a failure.
// Every keyword branch, including the fallback, populates "expected" and
// "actual"; the remaining keys are keyword-specific and stable, since
// downstream consumers select on them.
func BuildContext(failure domain.RawFailure, instanceValue, schemaValue any, keyword string) map[string]any {
	context := map[string]any{
		"instance_path": failure.InstancePath,
		"schema_path":   failure.SchemaPath,
	}

	switch keyword {
	case domain.KeywordType:
		context["expected_type"] = schemaValue
		context["actual_type"] = domain.KindName(instanceValue)
		context["expected"] = fmt.Sprintf("type: %s", domain.FormatValue(schemaValue))
		context["actual"] = instanceValue
	case domain.KeywordMinimum:
		context["minimum_value"] = schemaValue
		context["actual_value"] = instanceValue
		context["expected"] = fmt.Sprintf("value >= %s", domain.FormatValue(schemaValue))
		context["actual"] = instanceValue
	case domain.KeywordMaximum:
		context["maximum_value"] = schemaValue
		context["actual_value"] = instanceValue
		context["expected"] = fmt.Sprintf("value <= %s", domain.FormatValue(schemaValue))
		context["actual"] = instanceValue
	case domain.KeywordMinLength:
		length := stringLength(instanceValue)
		context["minimum_length"] = schemaValue
		context["actual_length"] = length
		context["expected"] = fmt.Sprintf("length >= %s", domain.FormatValue(schemaValue))
		context["actual"] = fmt.Sprintf("length: %d", length)
	case domain.KeywordMaxLength:
		length := stringLength(instanceValue)
		context["maximum_length"] = schemaValue
		context["actual_length"] = length
		context["expected"] = fmt.Sprintf("length <= %s", domain.FormatValue(schemaValue))
		context["actual"] = fmt.Sprintf("length: %d", length)
	case domain.KeywordPattern:
		context["pattern"] = schemaValue
		context["value"] = instanceValue
		context["expected"] = fmt.Sprintf("match pattern: %s", domain.FormatValue(schemaValue))
		context["actual"] = instanceValue
	case domain.KeywordRequired:
		context["required_properties"] = schemaValue
		context["expected"] = "all required properties present"
		context["actual"] = "missing required property"
	case domain.KeywordMinItems:
		context["minimum_items"] = schemaValue
		context["actual_items"] = arrayLength(instanceValue)
		context["expected"] = fmt.Sprintf("items >= %s", domain.FormatValue(schemaValue))
		context["actual"] = instanceValue
	case domain.KeywordMaxItems:
		context["maximum_items"] = schemaValue
		context["actual_items"] = arrayLength(instanceValue)
		context["expected"] = fmt.Sprintf("items <= %s", domain.FormatValue(schemaValue))
		context["actual"] = instanceValue
	default:
		context["constraint"] = schemaValue
		context["expected"] = "constraint satisfied"
		context["actual"] = instanceValue
	}

	return context
}

func stringLength(value any) int {
	if s, ok := value.(string); ok {
		return len(s)
	}
	return 0
}

func arrayLength(value any) int {
	if items, ok := value.([]any); ok {
		return len(items)
	}
	return 0
}
