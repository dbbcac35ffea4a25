package enrich

import "context"

type Codec interface {
	Decode(data []byte) (any, error)
	Encode(value any) ([]byte, error)
}

type Patcher interface {
	Apply(ctx context.Context, doc, patch []byte) ([]byte, error)
}
