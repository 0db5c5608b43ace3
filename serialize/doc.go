/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package serialize implements the line-oriented textual document
// format: blocks of preamble-tagged lines separated by blank lines. The
// writer's output is itself valid reader input, so documents round-trip
// through files byte for byte.
package serialize

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Doc is a serialized document: ordered maps of blocks by block id and
// lines by global line number. Blocks and lines reference each other
// through these maps rather than by owning pointers.
type Doc struct {
	blockIDs []string
	blockmap map[string]*Block
	linenos  []int
	linemap  map[int]*Line
}

// NewDoc creates an empty document.
func NewDoc() *Doc {
	return &Doc{
		blockmap: map[string]*Block{},
		linemap:  map[int]*Line{},
	}
}

// Len returns the number of lines in `d`.
func (d *Doc) Len() int {
	return len(d.linenos)
}

// Blocks returns the blocks of `d` in document order.
func (d *Doc) Blocks() []*Block {
	blocks := make([]*Block, len(d.blockIDs))
	for i, id := range d.blockIDs {
		blocks[i] = d.blockmap[id]
	}
	return blocks
}

// Lines returns the lines of `d` in document order.
func (d *Doc) Lines() []*Line {
	lines := make([]*Line, len(d.linenos))
	for i, n := range d.linenos {
		lines[i] = d.linemap[n]
	}
	return lines
}

// GetLine returns the line numbered `lineno`, or nil.
func (d *Doc) GetLine(lineno int) *Line {
	return d.linemap[lineno]
}

// AddLine registers `l` under its line number.
func (d *Doc) AddLine(l *Line) {
	n := l.Lineno()
	if _, ok := d.linemap[n]; !ok {
		d.linenos = append(d.linenos, n)
	}
	d.linemap[n] = l
}

// AddBlock registers `b` under its block id and hands it the document's
// line map. Add blocks before their lines so AddLine can register them.
func (d *Doc) AddBlock(b *Block) {
	b.doc = d
	if _, ok := d.blockmap[b.BlockID()]; !ok {
		d.blockIDs = append(d.blockIDs, b.BlockID())
	}
	d.blockmap[b.BlockID()] = b
}

// Span is a labeled run of lines belonging to one IGT instance.
type Span struct {
	ID    string
	First int
	Last  int
}

// Spans returns the document's IGT spans in order of appearance. A span
// is a maximal run of lines sharing a span id.
func (d *Doc) Spans() []Span {
	var spans []Span
	var cur *Span
	for _, l := range d.Lines() {
		id := l.SpanID()
		switch {
		case id != "":
			if cur == nil || cur.ID != id {
				if cur != nil {
					spans = append(spans, *cur)
				}
				cur = &Span{ID: id, First: l.Lineno(), Last: l.Lineno()}
			} else {
				cur.Last = l.Lineno()
			}
		case cur != nil:
			spans = append(spans, *cur)
			cur = nil
		}
	}
	if cur != nil {
		spans = append(spans, *cur)
	}
	return spans
}

// String renders the whole document, blocks separated by one blank
// line.
func (d *Doc) String() string {
	blocks := d.Blocks()
	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.String()
	}
	return strings.Join(parts, "\n\n")
}

// Write writes the document to `w` as UTF-8 text.
func (d *Doc) Write(w io.Writer) error {
	_, err := io.WriteString(w, d.String())
	return err
}

// WriteFile writes the document to `path`, gzip-compressing when the
// path ends in ".gz".
func (d *Doc) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %q", path)
	}
	defer f.Close()
	var w io.Writer = f
	if strings.HasSuffix(path, ".gz") {
		zw := gzip.NewWriter(f)
		defer zw.Close()
		w = zw
	}
	return d.Write(w)
}

// Read parses a serialized document from `r`. A line beginning with
// "doc_id" opens a new block; a line beginning with "line" is a data
// line of the current block; blank lines separate blocks.
func Read(r io.Reader) (*Doc, error) {
	d := NewDoc()
	var cur *Block

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		switch {
		case strings.HasPrefix(text, "doc_id"):
			fields := strings.Fields(text)
			if len(fields) < 2 {
				return nil, errors.Errorf("bad block header %q", text)
			}
			attrs := map[string]string{}
			for _, item := range fields[:len(fields)-2] {
				kv := strings.SplitN(item, "=", 2)
				if len(kv) != 2 {
					return nil, errors.Errorf("bad block header item %q", item)
				}
				attrs[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
			}
			cur = NewBlock(attrs)
			d.AddBlock(cur)
		case strings.HasPrefix(text, "line"):
			if cur == nil {
				return nil, errors.Errorf("data line before any block header: %q", text)
			}
			l, err := ParseLine(text)
			if err != nil {
				return nil, err
			}
			cur.AddLine(l)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read document")
	}
	return d, nil
}

// ReadFile reads a serialized document from `path`, decompressing when
// the path ends in ".gz".
func ReadFile(path string) (*Doc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %q", path)
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "gunzip %q", path)
		}
		defer zr.Close()
		r = zr
	}
	return Read(r)
}
