package mananki

import "context"

// RenderResult describes a cached HTML rendering of a manual page.
type RenderResult struct {
	// Path is the absolute path of the written file.
	Path string

	// FileName is the file's base name, used when linking notes back to
	// the rendering.
	FileName string

	// Changed reports whether the rendering differs from what was cached
	// before this run (true for a first rendering).
	Changed bool
}

// PageRenderer produces an HTML rendering of a manual page and caches it
// on disk. Renderings are keyed by (section, name) and overwritten on each
// run; the manual source is the single source of truth.
type PageRenderer interface {
	// Render locates the manual source, converts it to HTML and writes it
	// to the cache. Returns ENOTFOUND when the page cannot be located.
	Render(ctx context.Context, ref PageRef) (*RenderResult, error)
}
