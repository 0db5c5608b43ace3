/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

// Page is an ordered sequence of blocks plus the page dimensions in
// points. A page receives its block list once, at the end of layout
// analysis.
type Page struct {
	BBox
	ID     int
	Width  float64
	Height float64
	blocks []*Block
}

// NewPage creates an empty page with the given id and dimensions.
func NewPage(id int, width, height float64) *Page {
	return &Page{ID: id, Width: width, Height: height}
}

// Blocks returns the blocks in `p`.
func (p *Page) Blocks() []*Block {
	return p.blocks
}

// SetBlocks assigns the block list of `p` in one step and recomputes the
// page content bounding box.
func (p *Page) SetBlocks(blocks []*Block) {
	p.blocks = blocks
	p.BBox = BBox{}
	for i, b := range blocks {
		if i == 0 {
			p.BBox = b.BBox
		} else {
			p.BBox = p.BBox.Union(b.BBox)
		}
	}
}

// Lines returns the lines of all blocks in `p`, in block order.
func (p *Page) Lines() []*Line {
	var lines []*Line
	for _, b := range p.blocks {
		lines = append(lines, b.lines...)
	}
	return lines
}

// Tokens returns the flattened view of all tokens in `p`, in block then
// line order.
func (p *Page) Tokens() []Token {
	var tokens []Token
	for _, l := range p.Lines() {
		tokens = append(tokens, l.tokens...)
	}
	return tokens
}

func (p *Page) bbox() BBox {
	return p.BBox
}

// Document is an ordered sequence of pages carrying the document id.
type Document struct {
	ID    string
	Pages []*Page
}
