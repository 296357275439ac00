package render

import "errors"

// ErrNoRasterizer is reported when a paged attachment is present but no
// rasterizing capability was injected.
var ErrNoRasterizer = errors.New("no document rasterizer configured")

// Rasterizer renders pages of a paged attachment (a PDF plan set) to PNG
// image bytes. Implementations that spill to temporary files must remove
// them before returning, success or not.
type Rasterizer interface {
	// PageCount reports how many pages the document at path has.
	PageCount(path string) (int, error)

	// RasterizePage renders the zero-based page at the given resolution.
	RasterizePage(path string, pageIndex int, dpi float64) ([]byte, error)
}

// NoRasterizer is the default capability. Every paged attachment reports an
// embed failure, which the renderer turns into an inline notice.
type NoRasterizer struct{}

func (NoRasterizer) PageCount(string) (int, error) {
	return 0, ErrNoRasterizer
}

func (NoRasterizer) RasterizePage(string, int, float64) ([]byte, error) {
	return nil, ErrNoRasterizer
}
