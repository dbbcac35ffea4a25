package registry

import (
	"context"
	"time"

	"github.com/schemalens/schemalens/internal/domain"
)

type Store interface {
	SaveSchema(ctx context.Context, record Record) error
	LoadSchema(ctx context.Context, name string) (Record, error)
	ListSchemas(ctx context.Context) ([]Record, error)
	DeleteSchema(ctx context.Context, name string) error
}

// Compiler proves a document compiles before it enters the registry and
// reports the draft it resolved to.
type Compiler interface {
	Check(ctx context.Context, document []byte, draft domain.Draft) (domain.Draft, error)
}

type IDGenerator interface {
	NewID() (string, error)
}

type Clock interface {
	Now() time.Time
}
