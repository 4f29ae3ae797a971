package layout

// Conversion constants between pt and layout units at the drawing-library
// boundary. Canvas font faces are sized in points while every coordinate in
// this package is a layout unit; the two constants convert between them and
// are exact inverses of each other.
const (
	PtToUnit = 0.352777
	UnitToPt = 1.0 / PtToUnit
)
