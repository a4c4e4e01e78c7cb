package mock

import (
	"context"

	mananki "github.com/maiatoja152/man-to-anki"
)

var _ mananki.PageRenderer = (*PageRenderer)(nil)

// PageRenderer is a mock implementation of mananki.PageRenderer.
type PageRenderer struct {
	RenderFn func(ctx context.Context, ref mananki.PageRef) (*mananki.RenderResult, error)
}

func (r *PageRenderer) Render(ctx context.Context, ref mananki.PageRef) (*mananki.RenderResult, error) {
	return r.RenderFn(ctx, ref)
}
