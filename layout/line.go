/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import (
	"sort"
	"strings"
)

// Line is an ordered sequence of tokens sharing an approximate baseline.
// The bounding box is the union of the member tokens' boxes and is kept
// current as tokens are appended.
type Line struct {
	BBox
	tokens []Token
}

// NewLine creates a line containing `tokens`.
func NewLine(tokens []Token) *Line {
	l := &Line{}
	l.Extend(tokens)
	return l
}

// Tokens returns the tokens in `l`.
func (l *Line) Tokens() []Token {
	return l.tokens
}

// Append adds `t` to `l` and grows the bounding box to contain it.
func (l *Line) Append(t Token) {
	if len(l.tokens) == 0 {
		l.BBox = t.BBox
	} else {
		l.BBox = l.BBox.Union(t.BBox)
	}
	l.tokens = append(l.tokens, t)
}

// Extend appends each token in `tokens` to `l`.
func (l *Line) Extend(tokens []Token) {
	for _, t := range tokens {
		l.Append(t)
	}
}

// Sort orders the tokens in `l` left to right by Llx.
func (l *Line) Sort() {
	sort.SliceStable(l.tokens, func(i, j int) bool {
		return l.tokens[i].Llx < l.tokens[j].Llx
	})
}

// Overlap returns the vertical overlap of `l` and `o` as a fraction of
// the shorter line's height. Super/subscripts dangling across a baseline
// produce small positive overlaps; disjoint lines produce 0.
func (l *Line) Overlap(o *Line) float64 {
	a, b := l.BBox, o.BBox
	if a.Ury <= b.Lly || a.Lly >= b.Ury {
		return 0.0
	}
	if a.Ury == b.Ury && a.Lly == b.Lly {
		return 1.0
	}
	if a.Height() < b.Height() {
		a, b = b, a
	}
	if b.Height() == 0 {
		return 0.0
	}
	if a.Ury < b.Ury {
		return (a.Ury - b.Lly) / b.Height()
	}
	return (b.Ury - max(a.Lly, b.Lly)) / b.Height()
}

// String returns the text of `l` with single spaces between tokens.
func (l *Line) String() string {
	texts := make([]string, len(l.tokens))
	for i, t := range l.tokens {
		texts[i] = t.Text
	}
	return strings.Join(texts, " ")
}

func (l *Line) bbox() BBox {
	return l.BBox
}
