/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package reader parses the XML dialects produced by PDF text-extraction
// tools into the canonical token stream. The rest of the system is
// oblivious to the source format.
package reader

import (
	"compress/gzip"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/glottolab/lineate/layout"
)

// minLineOverlap is the vertical-overlap ratio at or above which two
// independently computed lines are considered the same physical line.
const minLineOverlap = 0.01

// Reader produces the per-page token stream of one document.
type Reader interface {
	// Pages returns the document's pages in page-number order.
	Pages() []Page
}

// Page is a reader-level page: dimensions plus the pre-grouped
// paragraphs the source format supplies. The layout analyzer consumes
// only the flattened token list.
type Page struct {
	ID     int
	Width  float64
	Height float64
	Paras  []Para
}

// Tokens returns all tokens of `p` in paragraph order.
func (p Page) Tokens() []layout.Token {
	var tokens []layout.Token
	for _, para := range p.Paras {
		tokens = append(tokens, para.Tokens...)
	}
	return tokens
}

// Para is a pre-grouped run of tokens from the source format.
type Para struct {
	Tokens []layout.Token
}

// Open opens `path` with the named reader, decompressing `.gz` input on
// the fly. Known formats are "tetml" and "pdfminer".
func Open(format, path string) (Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()
	var in io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "gunzip %q", path)
		}
		defer zr.Close()
		in = zr
	}
	switch format {
	case "tetml":
		return NewTetml(in)
	case "pdfminer":
		return NewPdfMiner(in)
	}
	return nil, errors.Errorf("unknown reader format %q", format)
}

// sortPages orders `pages` by page number.
func sortPages(pages []Page) []Page {
	sort.SliceStable(pages, func(i, j int) bool { return pages[i].ID < pages[j].ID })
	return pages
}

// MergeLines merges lines with small vertical overlaps, such as
// super/subscripts dangling across a baseline. Each candidate is merged
// into the first already-kept line it overlaps by at least
// minLineOverlap; otherwise it is kept as a new line. Only the legacy
// per-reader pipeline needs this; the XY-cut path groups lines itself.
func MergeLines(lines []*layout.Line) []*layout.Line {
	if len(lines) == 0 {
		return nil
	}
	merged := []*layout.Line{lines[0]}
	for _, line := range lines[1:] {
		done := false
		for _, kept := range merged {
			if line.Overlap(kept) >= minLineOverlap {
				kept.Extend(line.Tokens())
				done = true
				break
			}
		}
		if !done {
			merged = append(merged, line)
		}
	}
	return merged
}

// mostCommon returns the most frequent string pair in `pairs`, breaking
// ties in favour of the pair seen first.
func mostCommon(pairs [][2]string) [2]string {
	counts := map[[2]string]int{}
	var order [][2]string
	for _, p := range pairs {
		if counts[p] == 0 {
			order = append(order, p)
		}
		counts[p]++
	}
	var best [2]string
	bestN := 0
	for _, p := range order {
		if counts[p] > bestN {
			best, bestN = p, counts[p]
		}
	}
	return best
}
