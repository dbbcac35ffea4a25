package domain

import (
	"sort"
	"strconv"
	"strings"
)

// KindName names the JSON kind of a decoded value. Numbers cover the types
// the JSON and YAML codecs produce.
func KindName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, float32, int, int64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return "unknown"
	}
}

// FormatValue renders a decoded JSON value as compact JSON text for embedding
// in context entries and suggestion strings. Kept infallible and pure so the
// enrichment path never has to handle a formatter error; object keys are
// sorted for deterministic output.
func FormatValue(value any) string {
	var b strings.Builder
	formatValue(&b, value)
	return b.String()
}

func formatValue(b *strings.Builder, value any) {
	switch v := value.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case string:
		b.WriteString(strconv.Quote(v))
	case int:
		b.WriteString(strconv.Itoa(v))
	case int64:
		b.WriteString(strconv.FormatInt(v, 10))
	case float64:
		if v == float64(int64(v)) {
			b.WriteString(strconv.FormatInt(int64(v), 10))
			return
		}
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case []any:
		b.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			formatValue(b, item)
		}
		b.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(key))
			b.WriteByte(':')
			formatValue(b, v[key])
		}
		b.WriteByte('}')
	default:
		b.WriteString(strconv.Quote(KindName(v)))
	}
}

// FormatScalar renders a value the way it reads in prose: strings without
// surrounding quotes, everything else as compact JSON.
func FormatScalar(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return FormatValue(value)
}
