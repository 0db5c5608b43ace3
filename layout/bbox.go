/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package layout holds the geometric document model produced by the
// readers and the layout analyzer: Token, Line, Block, Page, Document.
// Coordinates are in points with the origin at the lower-left corner of
// the page, so larger Lly means higher on the page.
package layout

import "fmt"

// BBox is an axis-aligned bounding box with a lower-left origin.
type BBox struct {
	Llx, Lly, Urx, Ury float64
}

// Width returns the horizontal extent of `b`.
func (b BBox) Width() float64 {
	return b.Urx - b.Llx
}

// Height returns the vertical extent of `b`.
func (b BBox) Height() float64 {
	return b.Ury - b.Lly
}

// Union returns the smallest box containing both `b` and `o`.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		Llx: min(b.Llx, o.Llx),
		Lly: min(b.Lly, o.Lly),
		Urx: max(b.Urx, o.Urx),
		Ury: max(b.Ury, o.Ury),
	}
}

// String returns a description of `b`.
func (b BBox) String() string {
	return fmt.Sprintf("(%.1f,%.1f,%.1f,%.1f)", b.Llx, b.Lly, b.Urx, b.Ury)
}

// bounded is an object with a bounding box: a token, line, block or page.
type bounded interface {
	bbox() BBox
}
