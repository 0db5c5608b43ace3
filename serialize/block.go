/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package serialize

import (
	"fmt"
	"strconv"
	"strings"
)

// Block groups a run of document lines. It stores only line numbers;
// the owning Doc's line map resolves them.
type Block struct {
	Attrs   map[string]string
	Linenos []int
	doc     *Doc
}

// NewBlock creates a block with a copy of `attrs`.
func NewBlock(attrs map[string]string) *Block {
	b := &Block{Attrs: map[string]string{}}
	for k, v := range attrs {
		b.Attrs[k] = v
	}
	return b
}

// BlockID returns the block id. Analyzed documents use the form
// "{page}-{ordinal}"; the plain-text importer uses "b1", "b2", ...
func (b *Block) BlockID() string {
	return b.Attrs["block_id"]
}

// DocID returns the id of the containing document.
func (b *Block) DocID() string {
	return b.Attrs["doc_id"]
}

// Page returns the page number the block was found on.
func (b *Block) Page() int {
	n, _ := strconv.Atoi(b.Attrs["page"])
	return n
}

// Label returns the cut path that produced the block's zone.
func (b *Block) Label() string {
	return b.Attrs["label"]
}

// BBox returns the block bounding box as four floats. Malformed
// components read as 0.
func (b *Block) BBox() [4]float64 {
	var box [4]float64
	parts := strings.Split(b.bboxStr(), ",")
	for i := 0; i < len(parts) && i < 4; i++ {
		box[i], _ = strconv.ParseFloat(parts[i], 64)
	}
	return box
}

func (b *Block) bboxStr() string {
	if s, ok := b.Attrs["bbox"]; ok {
		return s
	}
	return "0,0,0,0"
}

// Lines resolves the block's line numbers against the owning document.
func (b *Block) Lines() []*Line {
	lines := make([]*Line, 0, len(b.Linenos))
	for _, n := range b.Linenos {
		if l := b.doc.GetLine(n); l != nil {
			lines = append(lines, l)
		}
	}
	return lines
}

// AddLine appends `l` to the block and registers it with the owning
// document.
func (b *Block) AddLine(l *Line) {
	l.BlockID = b.BlockID()
	if b.doc != nil {
		b.doc.AddLine(l)
	}
	b.Linenos = append(b.Linenos, l.Lineno())
}

// Fonts returns the fonts of all lines in the block.
func (b *Block) Fonts() []Font {
	var fonts []Font
	for _, l := range b.Lines() {
		fonts = append(fonts, l.Fonts()...)
	}
	return fonts
}

// String renders the block in the serialization format: the header line
// followed by one preamble-aligned data line per line. Preambles are
// padded so the ':' separators align within the block.
func (b *Block) String() string {
	lines := b.Lines()
	startLine, stopLine := 0, 0
	if len(lines) > 0 {
		startLine = lines[0].Lineno()
		stopLine = lines[len(lines)-1].Lineno()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "doc_id=%s page=%d block_id=%s bbox=%s label=%s %d %d\n",
		b.DocID(), b.Page(), b.BlockID(), b.bboxStr(), b.Label(), startLine, stopLine)

	maxPreLen := 0
	for _, l := range lines {
		if n := len(l.Preamble()); n > maxPreLen {
			maxPreLen = n
		}
	}
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%-*s:%s", maxPreLen, l.Preamble(), l.Text)
	}
	return sb.String()
}
