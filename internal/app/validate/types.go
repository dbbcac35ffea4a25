package validate

import "github.com/schemalens/schemalens/internal/domain"

// CompiledSchema pairs the engine's validator with the retained schema
// document the enrichment engine resolves pointers against. It is immutable
// after compilation and safe to share across any number of validation calls.
type CompiledSchema struct {
	ID        string
	Draft     domain.Draft
	Document  any
	Validator Validator
}
