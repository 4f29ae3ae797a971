// Package fonts resolves font descriptions to loaded font resources.
//
// The package carries an embedded copy of the Inter static faces used as
// the designated fallback when a requested family cannot be loaded, and a
// per-render-call cache that guarantees each distinct font reference is
// loaded at most once.
package fonts

import (
	"embed"
	"fmt"
)

//go:embed Inter/static/*.ttf
var fontFS embed.FS

// Embedded returns the bytes of a face shipped with this package. The
// path is relative to the package directory, e.g.
// "Inter/static/Inter-Regular.ttf".
func Embedded(path string) ([]byte, error) {
	data, err := fontFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read embedded font %s: %w", path, err)
	}
	return data, nil
}
