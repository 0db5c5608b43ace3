/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xycut

import (
	"github.com/glottolab/lineate/layout"
)

// zoneSlack absorbs integer truncation in the bitmap: a token whose box
// crosses a zone edge by less than a point still belongs to the zone.
// It should not capture extra characters unless they already overlapped.
const zoneSlack = 1.0

// zoneToBlock converts leaf zone `z` into a block. The zone's rows are
// re-projected with the row-wise max to find every empty row run; the
// runs' midpoints bound the vertical bands, and each in-zone token is
// assigned to the band containing it.
func zoneToBlock(idx *layout.RectIndex, bm *bitmap, z zone, id int) *layout.Block {
	zbox := layout.BBox{
		Llx: float64(z.llx), Lly: float64(z.lly),
		Urx: float64(z.urx), Ury: float64(z.ury),
	}
	tokens := idx.Inside(zbox, zoneSlack)
	block := layout.NewBlock(id, z.path)

	proj := bm.rowMaxes(z.llx, z.lly, z.urx, z.ury)
	_, yGaps, _ := gaps(proj, 0, 0, z.lly)

	mids := make([]float64, len(yGaps))
	for i, g := range yGaps {
		mids[i] = float64(g.start+g.end) / 2
	}
	bottoms := append([]float64{float64(z.lly)}, mids...)
	tops := append(append([]float64{}, mids...), float64(z.ury))

	for i := range bottoms {
		band := layout.BBox{Llx: zbox.Llx, Lly: bottoms[i], Urx: zbox.Urx, Ury: tops[i]}
		var ts []layout.Token
		for _, t := range tokens {
			if insideWithSlack(t.BBox, band) {
				ts = append(ts, t)
			}
		}
		if len(ts) > 0 {
			line := layout.NewLine(ts)
			line.Sort()
			block.Append(line)
		}
	}

	block.Sort()
	return block
}

func insideWithSlack(t, b layout.BBox) bool {
	return t.Llx >= b.Llx-zoneSlack &&
		t.Lly >= b.Lly-zoneSlack &&
		t.Urx <= b.Urx+zoneSlack &&
		t.Ury <= b.Ury+zoneSlack
}
