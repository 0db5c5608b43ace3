/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xycut

import (
	"github.com/glottolab/lineate/layout"
)

// bitmap is a dense density grid over one page, indexed [y][x] with the
// origin at the lower-left corner.
type bitmap struct {
	w, h  int
	cells [][]float64
}

// makeBitmap rasterizes `tokens` onto a grid of the integer-truncated
// page dimensions. Each token writes a five-band vertical profile over
// its column span: empty outer fifths, tapered (0.1 x height) second
// fifths and a full-density centre. The empty bands keep horizontal
// gutters open between adjacent text rows even when ascenders and
// descenders would touch; the taper avoids smearing a column into its
// neighbour.
func makeBitmap(width, height float64, tokens []layout.Token) *bitmap {
	w, h := int(width), int(height)
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	bm := &bitmap{w: w, h: h, cells: make([][]float64, h)}
	for y := range bm.cells {
		bm.cells[y] = make([]float64, w)
	}
	for _, t := range tokens {
		llx, lly := int(t.Llx), int(t.Lly)
		urx, ury := int(t.Urx), int(t.Ury)
		dy := (ury - lly) / 5
		bm.fill(llx, urx, lly, lly+dy, 0)
		bm.fill(llx, urx, lly+dy, lly+2*dy, t.Height()*0.1)
		bm.fill(llx, urx, lly+2*dy, ury-2*dy, t.Height())
		bm.fill(llx, urx, ury-2*dy, ury-dy, t.Height()*0.1)
		bm.fill(llx, urx, ury-dy, ury, 0)
	}
	return bm
}

// fill assigns `v` to the cells in columns [x0,x1) of rows [y0,y1),
// clamped to the grid.
func (bm *bitmap) fill(x0, x1, y0, y1 int, v float64) {
	x0, x1 = clamp(x0, bm.w), clamp(x1, bm.w)
	y0, y1 = clamp(y0, bm.h), clamp(y1, bm.h)
	for y := y0; y < y1; y++ {
		row := bm.cells[y]
		for x := x0; x < x1; x++ {
			row[x] = v
		}
	}
}

// colSums returns the per-column sum over rows [lly,ury) of columns
// [llx,urx), clamped to the grid.
func (bm *bitmap) colSums(llx, lly, urx, ury int) []float64 {
	llx, urx = clamp(llx, bm.w), clamp(urx, bm.w)
	lly, ury = clamp(lly, bm.h), clamp(ury, bm.h)
	sums := make([]float64, urx-llx)
	for y := lly; y < ury; y++ {
		row := bm.cells[y]
		for x := llx; x < urx; x++ {
			sums[x-llx] += row[x]
		}
	}
	return sums
}

// rowSums returns the per-row sum over the same slice as colSums.
func (bm *bitmap) rowSums(llx, lly, urx, ury int) []float64 {
	llx, urx = clamp(llx, bm.w), clamp(urx, bm.w)
	lly, ury = clamp(lly, bm.h), clamp(ury, bm.h)
	sums := make([]float64, ury-lly)
	for y := lly; y < ury; y++ {
		row := bm.cells[y]
		for x := llx; x < urx; x++ {
			sums[y-lly] += row[x]
		}
	}
	return sums
}

// rowMaxes returns the per-row maximum over rows [lly,ury) of columns
// [llx,urx). The row max keeps inter-line gaps sharp when individual
// lines have sparse tokens.
func (bm *bitmap) rowMaxes(llx, lly, urx, ury int) []float64 {
	llx, urx = clamp(llx, bm.w), clamp(urx, bm.w)
	lly, ury = clamp(lly, bm.h), clamp(ury, bm.h)
	maxes := make([]float64, ury-lly)
	for y := lly; y < ury; y++ {
		row := bm.cells[y]
		for x := llx; x < urx; x++ {
			if row[x] > maxes[y-lly] {
				maxes[y-lly] = row[x]
			}
		}
	}
	return maxes
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
