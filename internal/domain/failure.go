package domain

// RawFailure is one structural validation failure as reported by the
// validation engine. InstancePath points into the instance document,
// SchemaPath into the compiled schema, both as slash-delimited pointers.
type RawFailure struct {
	InstancePath string `json:"instance_path"`
	SchemaPath   string `json:"schema_path"`
	Message      string `json:"message"`
}

// EnrichedFailure extends a RawFailure with everything needed to understand
// the failure without re-running validation: the violated keyword, the
// offending instance and schema values, an expected-vs-actual context map,
// inherited schema annotations, and remediation suggestions.
//
// Context always carries "expected" and "actual" entries regardless of
// keyword. Suggestions is never empty. InstanceValue is null when the
// instance path does not resolve; SchemaValue degrades to a sentinel string
// when the constraint cannot be located.
type EnrichedFailure struct {
	RawFailure

	Keyword       string         `json:"keyword"`
	InstanceValue any            `json:"instance_value"`
	SchemaValue   any            `json:"schema_value"`
	Context       map[string]any `json:"context"`
	Annotations   map[string]any `json:"annotations"`
	Suggestions   []string       `json:"suggestions"`
	Fix           *FixPreview    `json:"fix,omitempty"`
}

// PatchOperation is a single RFC 6902 operation.
type PatchOperation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value,omitempty"`
}

// FixPreview is a best-effort machine-applicable remediation: the patch that
// would resolve the failure and the instance as it would look afterwards.
type FixPreview struct {
	Patch   []PatchOperation `json:"patch"`
	Preview any              `json:"preview"`
}
