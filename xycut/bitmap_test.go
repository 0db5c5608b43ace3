/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xycut

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glottolab/lineate/layout"
)

func tok(text string, llx, lly, urx, ury float64) layout.Token {
	return layout.NewToken(text, layout.BBox{Llx: llx, Lly: lly, Urx: urx, Ury: ury}, "F", 0, layout.Features{})
}

// TestMakeBitmapBands checks the five-band vertical profile of a token.
func TestMakeBitmapBands(t *testing.T) {
	bm := makeBitmap(20, 20, []layout.Token{tok("x", 0, 0, 10, 10)})

	// Height 10, so each band is two rows: empty, tapered, full, tapered,
	// empty from the bottom up.
	wantRows := map[int]float64{
		0: 0, 1: 0,
		2: 1, 3: 1,
		4: 10, 5: 10,
		6: 1, 7: 1,
		8: 0, 9: 0,
	}
	for y, want := range wantRows {
		for x := 0; x < 10; x++ {
			require.Equal(t, want, bm.cells[y][x], "row %d col %d", y, x)
		}
	}
	// Outside the token's column span nothing is written.
	for y := 0; y < 20; y++ {
		require.Zero(t, bm.cells[y][15])
	}
}

// TestMakeBitmapShortToken checks that tokens shorter than five rows
// collapse to a single full-density strip.
func TestMakeBitmapShortToken(t *testing.T) {
	bm := makeBitmap(10, 10, []layout.Token{tok("x", 0, 0, 4, 3)})
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			require.Equal(t, 3.0, bm.cells[y][x])
		}
	}
	require.Zero(t, bm.cells[3][0])
}

// TestMakeBitmapClamps checks that tokens poking past the page edge do
// not write out of bounds.
func TestMakeBitmapClamps(t *testing.T) {
	require.NotPanics(t, func() {
		makeBitmap(10, 10, []layout.Token{tok("x", -5, -5, 15, 15)})
	})
}

// TestProjections checks the row projections used for line discovery.
func TestProjections(t *testing.T) {
	bm := makeBitmap(10, 10, []layout.Token{tok("x", 0, 0, 2, 3), tok("y", 6, 0, 8, 3)})
	maxes := bm.rowMaxes(0, 0, 10, 10)
	require.Equal(t, 3.0, maxes[0])
	require.Zero(t, maxes[5])

	sums := bm.rowSums(0, 0, 10, 10)
	require.Equal(t, 12.0, sums[0]) // two tokens, two columns each, density 3

	cols := bm.colSums(0, 0, 10, 10)
	require.Equal(t, 9.0, cols[0]) // three rows of density 3
	require.Zero(t, cols[4])
}
