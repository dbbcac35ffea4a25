package jsonpatch

import (
	"context"
	"fmt"

	"github.com/evanphx/json-patch/v5"
)

// Patcher applies RFC 6902 patches for fix previews. Intermediate objects
// are created on add so defaults can land under paths the instance does not
// have yet.
type Patcher struct{}

func (Patcher) Apply(ctx context.Context, doc, patch []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	decoded, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}

	options := jsonpatch.NewApplyOptions()
	options.EnsurePathExistsOnAdd = true
	out, err := decoded.ApplyWithOptions(doc, options)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return out, nil
}
