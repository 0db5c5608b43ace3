/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package xycut implements a modified recursive XY-cut layout analyzer.
// A page of tokens is rasterized onto a density grid, the grid is split
// recursively along empty gutters into rectangular zones, and each leaf
// zone is converted to a block of lines by re-projecting its rows.
package xycut

import (
	"github.com/glottolab/lineate/common"
	"github.com/glottolab/lineate/reader"
)

// cutRatio is a minimum (height, width) ratio pair of a candidate cut,
// measured against the page dimensions.
type cutRatio struct {
	h, w float64
}

// parameters are the cut admissibility thresholds, derived once per
// document.
type parameters struct {
	minVCutSize cutRatio // smaller-child minimums for vertical cuts
	minHCutSize cutRatio // smaller-child minimums for horizontal cuts
	maxXDensity float64
	maxYDensity float64
	minXGap     float64
	minYGap     float64
}

// makeParameters derives the cut thresholds from all pages of the
// document. The minimum gap on both axes is the average token height,
// which guards against cutting inside character spacing.
func makeParameters(pages []reader.Page) parameters {
	params := parameters{
		minVCutSize: cutRatio{1.0 / 32, 1.0 / 6},
		minHCutSize: cutRatio{1.0 / 128, 1.0 / 6},
		maxXDensity: 0.0,
		maxYDensity: 0.0,
	}

	sum, n := 0.0, 0
	for _, page := range pages {
		for _, t := range page.Tokens() {
			sum += t.Height()
			n++
		}
	}
	h := 1.0
	if n > 0 {
		h = sum / float64(n)
	}
	params.minXGap = h
	params.minYGap = h

	common.Log.Debugf("parameters: minXGap=%.2f minYGap=%.2f vcut=%v hcut=%v",
		params.minXGap, params.minYGap, params.minVCutSize, params.minHCutSize)
	return params
}

// zoneRect is a zone rectangle in integer bitmap coordinates.
type zoneRect struct {
	llx, lly, urx, ury int
}

// zone is a leaf rectangle of the XY-cut recursion together with the
// path of cuts that produced it.
type zone struct {
	zoneRect
	path string
}

// findZones recursively splits `bbox` along the widest admissible empty
// gutter and appends the leaf zones to `out` in depth-first, top-first /
// left-first order, which is reading order for typical layouts.
func findZones(bm *bitmap, bbox zoneRect, path string, params parameters, out []zone) []zone {
	xVec := bm.colSums(bbox.llx, bbox.lly, bbox.urx, bbox.ury)
	yVec := bm.rowSums(bbox.llx, bbox.lly, bbox.urx, bbox.ury)

	lft, xGaps, rgt := gaps(xVec, params.minXGap, params.maxXDensity, bbox.llx)
	btm, yGaps, top := gaps(yVec, params.minYGap, params.maxYDensity, bbox.lly)

	axis, mid, ok := bestCutAxis(xGaps, yGaps, zoneRect{lft, btm, rgt, top}, bm.w, bm.h, params)
	switch {
	case ok && axis == axisHorizontal:
		out = findZones(bm, zoneRect{bbox.llx, mid, bbox.urx, bbox.ury}, path+"t", params, out)
		out = findZones(bm, zoneRect{bbox.llx, bbox.lly, bbox.urx, mid}, path+"b", params, out)
	case ok && axis == axisVertical:
		out = findZones(bm, zoneRect{bbox.llx, bbox.lly, mid, bbox.ury}, path+"l", params, out)
		out = findZones(bm, zoneRect{mid, bbox.lly, bbox.urx, bbox.ury}, path+"r", params, out)
	default:
		out = append(out, zone{bbox, path})
	}
	return out
}

const (
	axisHorizontal = 0 // cut along a row gap, splitting top/bottom
	axisVertical   = 1 // cut along a column gap, splitting left/right
)

// bestCutAxis selects the admissible cut with the maximum gap width.
// Ties prefer vertical cuts, then the larger midpoint. `trimmed` is the
// content extent of the zone with the outer margins removed; ratios are
// measured against the full page dimensions `w` x `h`.
func bestCutAxis(xGaps, yGaps []gap, trimmed zoneRect, w, h int, params parameters) (int, int, bool) {
	lft, btm, rgt, top := trimmed.llx, trimmed.lly, trimmed.urx, trimmed.ury
	type cut struct {
		size, axis, mid int
	}
	var best cut
	found := false
	consider := func(c cut) {
		if !found || c.size > best.size ||
			(c.size == best.size && c.axis > best.axis) ||
			(c.size == best.size && c.axis == best.axis && c.mid > best.mid) {
			best = c
			found = true
		}
	}
	for _, g := range xGaps {
		hRatio := float64(top-btm) / float64(h)
		wRatio := float64(minInt(g.start-lft, rgt-g.end)) / float64(w)
		if hRatio >= params.minVCutSize.h && wRatio >= params.minVCutSize.w {
			consider(cut{g.width(), axisVertical, g.mid()})
		}
	}
	for _, g := range yGaps {
		hRatio := float64(minInt(g.start-btm, top-g.end)) / float64(h)
		wRatio := float64(rgt-lft) / float64(w)
		if hRatio >= params.minHCutSize.h && wRatio >= params.minHCutSize.w {
			consider(cut{g.width(), axisHorizontal, g.mid()})
		}
	}
	return best.axis, best.mid, found
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
