package registry

import "github.com/schemalens/schemalens/internal/domain"

// Record is a named schema held by the registry.
type Record struct {
	ID        string
	Name      string
	Draft     domain.Draft
	Document  []byte
	CreatedAt int64
}
