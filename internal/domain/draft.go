package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDraft = errors.New("unknown draft")

// Draft identifies a JSON Schema specification revision.
type Draft string

const (
	DraftAuto Draft = "auto"
	Draft4    Draft = "draft4"
	Draft6    Draft = "draft6"
	Draft7    Draft = "draft7"
	Draft2019 Draft = "draft2019-09"
	Draft2020 Draft = "draft2020-12"
)

// DefaultDraft is the newest supported revision, used whenever a schema does
// not pin one.
const DefaultDraft = Draft2020

// ParseDraft normalizes a user-supplied draft name.
func ParseDraft(value string) (Draft, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", string(DraftAuto):
		return DraftAuto, nil
	case string(Draft4), "draft-04", "4":
		return Draft4, nil
	case string(Draft6), "draft-06", "6":
		return Draft6, nil
	case string(Draft7), "draft-07", "7":
		return Draft7, nil
	case string(Draft2019), "2019-09":
		return Draft2019, nil
	case string(Draft2020), "2020-12":
		return Draft2020, nil
	default:
		return DraftAuto, fmt.Errorf("%w: %q", ErrUnknownDraft, value)
	}
}

// DetectDraft reads the $schema property of a decoded schema document and
// matches it against the known draft identifiers. Absent or unrecognized
// values fall through to DefaultDraft; there is no failure path.
func DetectDraft(schema any) Draft {
	object, ok := schema.(map[string]any)
	if !ok {
		return DefaultDraft
	}
	url, ok := object["$schema"].(string)
	if !ok {
		return DefaultDraft
	}

	switch {
	case strings.Contains(url, "draft-04") || strings.Contains(url, "draft/04"):
		return Draft4
	case strings.Contains(url, "draft-06") || strings.Contains(url, "draft/06"):
		return Draft6
	case strings.Contains(url, "draft-07") || strings.Contains(url, "draft/07"):
		return Draft7
	case strings.Contains(url, "2019-09"):
		return Draft2019
	case strings.Contains(url, "2020-12"):
		return Draft2020
	default:
		return DefaultDraft
	}
}
