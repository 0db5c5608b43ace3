/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import "sort"

// Block is an ordered sequence of lines covering one leaf zone of the
// page segmentation. ID is unique within the page (1-based emission
// ordinal) and Label is the cut path that produced the zone, a string
// over {t,b,l,r}.
type Block struct {
	BBox
	ID    int
	Label string
	lines []*Line
}

// NewBlock creates an empty block with `id` and cut path `label`.
func NewBlock(id int, label string) *Block {
	return &Block{ID: id, Label: label}
}

// Lines returns the lines in `b`.
func (b *Block) Lines() []*Line {
	return b.lines
}

// Append adds `l` to `b` and grows the bounding box to contain it.
func (b *Block) Append(l *Line) {
	if len(b.lines) == 0 {
		b.BBox = l.BBox
	} else {
		b.BBox = b.BBox.Union(l.BBox)
	}
	b.lines = append(b.lines, l)
}

// Sort orders the lines in `b` top to bottom, i.e. by descending Lly.
func (b *Block) Sort() {
	sort.SliceStable(b.lines, func(i, j int) bool {
		return b.lines[i].Lly > b.lines[j].Lly
	})
}

func (b *Block) bbox() BBox {
	return b.BBox
}
