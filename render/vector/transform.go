package vector

// Content space has its origin top-left with Y increasing downward; page
// space has its origin bottom-left with Y increasing upward. The flip is
// applied exactly once, at this backend's boundary; commands themselves
// never carry page-space assumptions.

// PageY maps a content-space Y coordinate into page space for a page of
// the given height.
func PageY(pageHeight, y float64) float64 {
	return pageHeight - y
}

// ContentY maps a page-space Y coordinate back into content space. The
// transform is an involution, so a round trip restores the input exactly.
func ContentY(pageHeight, y float64) float64 {
	return pageHeight - y
}

// RectOriginY returns the page-space Y of a rectangle's origin. Page-space
// rectangles anchor at their bottom-left corner, so the content-space top
// edge plus the height lands on the page-space origin.
func RectOriginY(pageHeight, top, height float64) float64 {
	return PageY(pageHeight, top+height)
}
