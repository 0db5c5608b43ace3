/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package respace converts token geometry back into text whose
// whitespace preserves column alignment. Adjacent lines that form an
// interlinear group (a source line with gloss or translation lines
// beneath it) have their columns aligned coherently across the group so
// that glosses line up under their source tokens.
package respace

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/glottolab/lineate/layout"
)

// InterlinearThreshold is the minimum interlinear score for a line to
// join the group opened by its predecessor.
const InterlinearThreshold = 0.6

// Pair is one positioned text run of a line: a column in character
// units plus the text placed there.
type Pair struct {
	Col  int
	Text string
}

// Line is one respaced output line. Score is the interlinear alignment
// score against the previous line, nil for the first line of a block or
// when the predecessor produced no columns.
type Line struct {
	Text  string
	Score *float64
}

// Block respaces the lines of `block`. `xoffset` normalizes columns
// against the document's minimum left coordinate (pass the negated
// margin). One output line is returned per block line, in order.
func Block(block *layout.Block, xoffset float64) []Line {
	charDx := blockCharDx(block)
	minDx := charDx / 3

	type entry struct {
		pairs []Pair
		score *float64
	}
	var groups [][]*entry
	var prev []Pair
	for _, line := range block.Lines() {
		pairs := columnize(line.Tokens(), minDx, charDx, xoffset)
		var score *float64
		if len(prev) > 0 {
			s := interlinearScore(pairs, prev)
			score = &s
		}
		e := &entry{pairs: pairs, score: score}
		if score == nil || *score < InterlinearThreshold {
			groups = append(groups, []*entry{e})
		} else {
			groups[len(groups)-1] = append(groups[len(groups)-1], e)
		}
		prev = pairs
	}

	var out []Line
	for _, group := range groups {
		rows := make([][]Pair, len(group))
		for i, e := range group {
			rows[i] = e.pairs
		}
		respaceGroup(rows)
		for _, e := range group {
			out = append(out, Line{Text: emit(e.pairs), Score: e.score})
		}
	}
	return out
}

// blockCharDx computes the mean character width over the block: the sum
// of token point widths divided by the number of characters of text.
// Blocks with no text get the identity width 1.
func blockCharDx(block *layout.Block) float64 {
	num, den := 0.0, 0
	for _, line := range block.Lines() {
		for _, t := range line.Tokens() {
			num += t.Width()
			den += utf8.RuneCountInString(t.Text)
		}
	}
	if den == 0 {
		return 1.0
	}
	return num / den
}

// columnize walks a line's tokens and produces (column, text) pairs.
// Tokens separated by less than `minDx` were mis-split glyphs and are
// merged back into the previous pair. Super/subscript tokens are
// wrapped as ^{...} and _{...}.
func columnize(tokens []layout.Token, minDx, charDx, xoffset float64) []Pair {
	lastX := 0.0
	var pairs []Pair
	for _, t := range tokens {
		dx := t.Llx - lastX
		text := t.Text
		if t.Features.Sup {
			text = "^{" + text + "}"
		} else if t.Features.Sub {
			text = "_{" + text + "}"
		}
		if len(pairs) == 0 || (charDx > 0 && dx >= minDx) {
			pairs = append(pairs, Pair{Col: llxCol(t.Llx+xoffset, charDx), Text: text})
		} else {
			pairs[len(pairs)-1].Text += text
		}
		lastX = t.Urx
	}
	return pairs
}

// llxCol converts an x coordinate to a column in character units.
func llxCol(x, dx float64) int {
	if dx == 0 {
		dx = 1
	}
	return int(x/dx + 0.5)
}

// interlinearScore relates a line's columns to its predecessor's. With A
// the current line's columns and B the predecessor's columns at or right
// of A's leftmost column, the score is the overlap of the smaller set
// with the larger, as a fraction of the larger.
func interlinearScore(cur, prev []Pair) float64 {
	left := cur[0].Col
	for _, p := range cur {
		if p.Col < left {
			left = p.Col
		}
	}
	a := map[int]bool{}
	for _, p := range cur {
		a[p.Col] = true
	}
	b := map[int]bool{}
	for _, p := range prev {
		if p.Col >= left {
			b[p.Col] = true
		}
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return 0.0
	}
	n := 0
	for c := range a {
		if b[c] {
			n++
		}
	}
	return float64(n) / float64(len(b))
}

// respaceGroup aligns the columns of an interlinear group. Columns are
// processed in ascending order; every row holding the column receives
// the common start max(column, rows' next free column), so pairs that
// align across rows share a column and each row's own columns stay
// strictly increasing.
func respaceGroup(rows [][]Pair) {
	cols := map[int][]int{}
	colidx := make([]int, len(rows))
	nextcol := make([]int, len(rows))
	for i, pairs := range rows {
		for _, p := range pairs {
			cols[p.Col] = append(cols[p.Col], i)
		}
	}

	sorted := make([]int, 0, len(cols))
	for c := range cols {
		sorted = append(sorted, c)
	}
	sort.Ints(sorted)

	for _, col := range sorted {
		rowidxs := cols[col]
		start := col
		for _, i := range rowidxs {
			if nextcol[i] > start {
				start = nextcol[i]
			}
		}
		for _, i := range rowidxs {
			p := &rows[i][colidx[i]]
			p.Col = start
			nextcol[i] = start + utf8.RuneCountInString(p.Text) + 1
			colidx[i]++
		}
	}
}

// emit renders a pair list as a string, padding each pair to its column.
// A negative pad should not occur after group respacing; it is clamped
// to zero.
func emit(pairs []Pair) string {
	var sb strings.Builder
	cursor := 0
	for _, p := range pairs {
		pad := p.Col - cursor
		if pad < 0 {
			pad = 0
		}
		sb.WriteString(strings.Repeat(" ", pad))
		sb.WriteString(p.Text)
		cursor += pad + utf8.RuneCountInString(p.Text)
	}
	return sb.String()
}
