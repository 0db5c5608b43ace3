/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xycut

import (
	"github.com/glottolab/lineate/common"
	"github.com/glottolab/lineate/layout"
	"github.com/glottolab/lineate/reader"
)

// Analyzer turns a reader's token stream into a block-structured
// document via recursive XY-cut segmentation.
type Analyzer struct {
	// DebugDir, when non-empty, receives one PNG per page showing the
	// density bitmap and the zone rectangles.
	DebugDir string
}

// Analyze runs layout analysis over every page of `r` and returns the
// document with id `docID`. Empty pages produce empty block lists.
func (a *Analyzer) Analyze(r reader.Reader, docID string) *layout.Document {
	doc := &layout.Document{ID: docID}

	pages := r.Pages()
	params := makeParameters(pages)

	for _, rp := range pages {
		common.Log.Debugf("analyzing page id=%d", rp.ID)
		tokens := rp.Tokens()
		bm := makeBitmap(rp.Width, rp.Height, tokens)

		var blocks []*layout.Block
		var zones []zone
		if len(tokens) > 0 {
			zones = findZones(bm, zoneRect{0, 0, bm.w, bm.h}, "", params, nil)
			idx := layout.NewRectIndex(tokens)
			for j, z := range zones {
				common.Log.Debugf("  zone found: (%d, %d, %d, %d)\t(width: %d, height: %d, path=%s)",
					z.llx, z.lly, z.urx, z.ury, z.urx-z.llx, z.ury-z.lly, z.path)
				blocks = append(blocks, zoneToBlock(idx, bm, z, j+1))
			}
		}

		numBlockTokens := 0
		for _, b := range blocks {
			for _, l := range b.Lines() {
				numBlockTokens += len(l.Tokens())
			}
		}
		if numBlockTokens != len(tokens) {
			common.Log.Warnf("page %d: different page-vs-block token counts: %d vs %d",
				rp.ID, len(tokens), numBlockTokens)
		}

		page := layout.NewPage(rp.ID, rp.Width, rp.Height)
		page.SetBlocks(blocks)
		doc.Pages = append(doc.Pages, page)

		if a.DebugDir != "" {
			if err := writeDebugImage(a.DebugDir, docID, rp.ID, bm, zones); err != nil {
				common.Log.Warnf("page %d: debug image: %v", rp.ID, err)
			}
		}
	}

	return doc
}
