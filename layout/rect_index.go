/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import (
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// RectIndex answers containment queries over a page's tokens. It keeps
// one sorted ordering per box attribute; a query intersects the per-attr
// answer sets as roaring bitmaps of token indexes.
type RectIndex struct {
	tokens []Token
	orders map[attrKind][]uint32
}

// NewRectIndex builds an index over `tokens`.
func NewRectIndex(tokens []Token) *RectIndex {
	idx := &RectIndex{tokens: tokens, orders: map[attrKind][]uint32{}}
	for k, attr := range kindAttr {
		idx.orders[k] = idx.makeOrdering(attr)
	}
	return idx
}

// Inside returns the tokens whose boxes lie inside `b` expanded by
// `slack` on every side, in original token order.
func (idx *RectIndex) Inside(b BBox, slack float64) []Token {
	set := idx.ge(kLlx, b.Llx-slack)
	set.And(idx.ge(kLly, b.Lly-slack))
	set.And(idx.le(kUrx, b.Urx+slack))
	set.And(idx.le(kUry, b.Ury+slack))
	return idx.asTokens(set)
}

// makeOrdering returns an ordering over idx.tokens by `attr`.
func (idx *RectIndex) makeOrdering(attr attribute) []uint32 {
	order := make([]uint32, len(idx.tokens))
	for i := range idx.tokens {
		order[i] = uint32(i)
	}
	sort.SliceStable(order, func(i, j int) bool {
		oi, oj := order[i], order[j]
		return attr(idx.tokens[oi]) < attr(idx.tokens[oj])
	})
	return order
}

// asTokens resolves a bitmap of token indexes back to tokens. Roaring
// iterates ascending, so the result is in original token order.
func (idx *RectIndex) asTokens(s *roaring.Bitmap) []Token {
	var tokens []Token
	for _, e := range s.ToArray() {
		tokens = append(tokens, idx.tokens[e])
	}
	return tokens
}

// le returns the set of token indexes with attribute `k` <= `z`.
func (idx *RectIndex) le(k attrKind, z float64) *roaring.Bitmap {
	order := idx.orders[k]
	val := idx.kVal(k)
	n := len(idx.tokens)
	if n == 0 || z < val(0) {
		return roaring.New()
	}
	if z >= val(n-1) {
		return makeSet(order)
	}
	// i is the lowest i: val(i) > z so i-1 is the greatest i: val(i) <= z.
	i := sort.Search(n, func(i int) bool { return val(i) > z })
	return makeSet(order[:i])
}

// ge returns the set of token indexes with attribute `k` >= `z`.
func (idx *RectIndex) ge(k attrKind, z float64) *roaring.Bitmap {
	order := idx.orders[k]
	val := idx.kVal(k)
	n := len(idx.tokens)
	if n == 0 || z > val(n-1) {
		return roaring.New()
	}
	if z <= val(0) {
		return makeSet(order)
	}
	i := sort.Search(n, func(i int) bool { return val(i) >= z })
	return makeSet(order[i:])
}

func (idx *RectIndex) kVal(k attrKind) func(int) float64 {
	attr := kindAttr[k]
	order := idx.orders[k]
	return func(i int) float64 { return attr(idx.tokens[order[i]]) }
}

type attribute func(Token) float64

var kindAttr = map[attrKind]attribute{
	kLlx: func(t Token) float64 { return t.Llx },
	kUrx: func(t Token) float64 { return t.Urx },
	kLly: func(t Token) float64 { return t.Lly },
	kUry: func(t Token) float64 { return t.Ury },
}

type attrKind int

const (
	kLlx attrKind = iota
	kUrx
	kLly
	kUry
)

func makeSet(order []uint32) *roaring.Bitmap {
	return roaring.BitmapOf(order...)
}
