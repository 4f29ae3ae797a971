package vector

import (
	"fmt"

	"github.com/ByLCY/inkwell/fonts"
)

// FontUnavailableError reports that a font required by a text run could
// not be loaded. Unlike the raster path, the vector backend must not fall
// back silently: a document claiming text in a font it does not embed is
// an incorrect deliverable, not a degraded one.
type FontUnavailableError struct {
	Ref fonts.Reference
	Err error
}

func (e *FontUnavailableError) Error() string {
	return fmt.Sprintf("font unavailable: %s: %v", e.Ref, e.Err)
}

func (e *FontUnavailableError) Unwrap() error { return e.Err }

// FontEmbedError reports that a font was found but could not be embedded
// into the page document.
type FontEmbedError struct {
	Ref fonts.Reference
	Err error
}

func (e *FontEmbedError) Error() string {
	return fmt.Sprintf("font embedding failed: %s: %v", e.Ref, e.Err)
}

func (e *FontEmbedError) Unwrap() error { return e.Err }
