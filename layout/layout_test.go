/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func tok(text string, llx, lly, urx, ury float64) Token {
	return NewToken(text, BBox{Llx: llx, Lly: lly, Urx: urx, Ury: ury}, "F", 0, Features{})
}

// TestNewToken checks corner rounding and the size estimate.
func TestNewToken(t *testing.T) {
	tk := NewToken("x", BBox{Llx: 1.04, Lly: 2.06, Urx: 3.14159, Ury: 12.06}, "F", 0, Features{})
	require.Equal(t, 1.0, tk.Llx)
	require.Equal(t, 2.1, tk.Lly)
	require.Equal(t, 3.1, tk.Urx)
	require.Equal(t, 12.1, tk.Ury)
	require.InDelta(t, 10.0, tk.Size, 1e-9) // estimated from height

	tk = NewToken("x", BBox{Llx: 0, Lly: 0, Urx: 5, Ury: 8}, "F", 12, Features{})
	require.Equal(t, 12.0, tk.Size)
}

// TestLineBBox checks that the cached box tracks appends and extends.
func TestLineBBox(t *testing.T) {
	l := NewLine([]Token{tok("a", 5, 5, 10, 15)})
	require.Equal(t, BBox{Llx: 5, Lly: 5, Urx: 10, Ury: 15}, l.BBox)

	l.Append(tok("b", 0, 8, 3, 20))
	require.Equal(t, BBox{Llx: 0, Lly: 5, Urx: 10, Ury: 20}, l.BBox)

	l.Extend([]Token{tok("c", 20, 0, 30, 10)})
	require.Equal(t, BBox{Llx: 0, Lly: 0, Urx: 30, Ury: 20}, l.BBox)
}

// TestLineSort checks left-to-right token ordering.
func TestLineSort(t *testing.T) {
	l := NewLine([]Token{
		tok("c", 20, 0, 30, 10),
		tok("a", 0, 0, 5, 10),
		tok("b", 10, 0, 15, 10),
	})
	l.Sort()
	texts := make([]string, len(l.Tokens()))
	for i, tk := range l.Tokens() {
		texts[i] = tk.Text
	}
	require.Equal(t, []string{"a", "b", "c"}, texts)
}

// TestLineOverlap checks the overlap ratio against the shorter line.
func TestLineOverlap(t *testing.T) {
	a := NewLine([]Token{tok("a", 0, 0, 10, 10)})
	b := NewLine([]Token{tok("b", 0, 8, 10, 12)}) // height 4, 2 of them inside a
	require.InDelta(t, 0.5, a.Overlap(b), 1e-9)
	require.InDelta(t, 0.5, b.Overlap(a), 1e-9)

	c := NewLine([]Token{tok("c", 0, 20, 10, 30)})
	require.Zero(t, a.Overlap(c))

	d := NewLine([]Token{tok("d", 50, 0, 60, 10)}) // identical vertical extent
	require.Equal(t, 1.0, a.Overlap(d))
}

// TestBlockSort checks top-to-bottom line ordering.
func TestBlockSort(t *testing.T) {
	b := NewBlock(1, "tl")
	b.Append(NewLine([]Token{tok("low", 0, 0, 10, 10)}))
	b.Append(NewLine([]Token{tok("high", 0, 20, 10, 30)}))
	b.Sort()
	require.Equal(t, "high", b.Lines()[0].Tokens()[0].Text)
	require.Equal(t, "low", b.Lines()[1].Tokens()[0].Text)
	require.Equal(t, BBox{Llx: 0, Lly: 0, Urx: 10, Ury: 30}, b.BBox)
}

// TestPageTokens checks the flattened token view and the content box.
func TestPageTokens(t *testing.T) {
	b1 := NewBlock(1, "")
	b1.Append(NewLine([]Token{tok("a", 0, 20, 10, 30)}))
	b2 := NewBlock(2, "")
	b2.Append(NewLine([]Token{tok("b", 0, 0, 10, 10), tok("c", 20, 0, 30, 10)}))

	p := NewPage(1, 100, 50)
	p.SetBlocks([]*Block{b1, b2})

	require.Len(t, p.Lines(), 2)
	tokens := p.Tokens()
	require.Len(t, tokens, 3)
	require.Equal(t, "a", tokens[0].Text)
	require.Equal(t, BBox{Llx: 0, Lly: 0, Urx: 30, Ury: 30}, p.BBox)
}

// TestRectIndexInside checks containment queries with slack.
func TestRectIndexInside(t *testing.T) {
	tokens := []Token{
		tok("in", 10, 10, 20, 20),
		tok("out", 50, 50, 60, 60),
		tok("edge", 9.5, 10, 20, 20),
	}
	idx := NewRectIndex(tokens)

	inside := idx.Inside(BBox{Llx: 10, Lly: 5, Urx: 30, Ury: 30}, 1)
	require.Len(t, inside, 2)
	require.Equal(t, "in", inside[0].Text)
	require.Equal(t, "edge", inside[1].Text)

	// Without slack the edge token is excluded.
	inside = idx.Inside(BBox{Llx: 10, Lly: 5, Urx: 30, Ury: 30}, 0)
	require.Len(t, inside, 1)
	require.Equal(t, "in", inside[0].Text)

	// Empty index.
	require.Empty(t, NewRectIndex(nil).Inside(BBox{Urx: 100, Ury: 100}, 0))
}
