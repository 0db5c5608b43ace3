/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xycut

// gap is a half-open interval [start,end) of empty projection values,
// expressed in the bitmap's global coordinates.
type gap struct {
	start, end int
}

func (g gap) width() int {
	return g.end - g.start
}

func (g gap) mid() int {
	return (g.start + g.end) / 2
}

// gaps finds the maximal runs of `vec` whose normalized value is at most
// `maxDensity`. The vector is normalized by its maximum (a zero maximum
// counts as 1) and conceptually padded with a sentinel density of 1 on
// both ends so boundary transitions are detected uniformly. Runs
// touching the outer boundary are the margins: they are dropped and
// returned as the trimmed `start` and `end` instead. Remaining runs
// shorter than `minGap` are dropped. All coordinates are shifted by
// `offset`.
func gaps(vec []float64, minGap, maxDensity float64, offset int) (int, []gap, int) {
	start, end := offset, len(vec)+offset
	var gs []gap
	if end > start {
		m := 0.0
		for _, v := range vec {
			if v > m {
				m = v
			}
		}
		if m == 0 {
			m = 1
		}
		inGap := false
		gapStart := 0
		for i, v := range vec {
			empty := v/m <= maxDensity
			if empty && !inGap {
				inGap = true
				gapStart = i
			} else if !empty && inGap {
				inGap = false
				gs = append(gs, gap{gapStart + offset, i + offset})
			}
		}
		if inGap {
			gs = append(gs, gap{gapStart + offset, len(vec) + offset})
		}
	}
	if len(gs) > 0 && gs[0].start == start {
		start = gs[0].end
		gs = gs[1:]
	}
	if len(gs) > 0 && gs[len(gs)-1].end == end {
		end = gs[len(gs)-1].start
		gs = gs[:len(gs)-1]
	}
	kept := gs[:0]
	for _, g := range gs {
		if float64(g.width()) >= minGap {
			kept = append(kept, g)
		}
	}
	return start, kept, end
}
