/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package serialize

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleDoc() *Doc {
	d := NewDoc()
	b1 := NewBlock(map[string]string{
		"doc_id":   "sample",
		"page":     "1",
		"block_id": "1-1",
		"bbox":     "2,5,8,15",
		"label":    "t",
	})
	d.AddBlock(b1)
	b1.AddLine(NewLine("hi there", map[string]string{
		"line":  "1",
		"fonts": "F-10.0",
		"bbox":  "2,5,8,15",
	}))
	b1.AddLine(NewLine("second", map[string]string{
		"line":   "2",
		"tag":    "L",
		"fonts":  "F-10.0,G-9.0",
		"bbox":   "2,5,8,15",
		"iscore": "1.00",
	}))

	b2 := NewBlock(map[string]string{
		"doc_id":   "sample",
		"page":     "2",
		"block_id": "2-1",
		"bbox":     "0,0,0,0",
		"label":    "",
	})
	d.AddBlock(b2)
	b2.AddLine(NewLine("third", map[string]string{
		"line": "3",
		"bbox": "0,0,0,0",
	}))
	return d
}

// TestRoundTrip checks that serialize -> deserialize -> serialize yields
// byte-identical output.
func TestRoundTrip(t *testing.T) {
	first := sampleDoc().String()
	d, err := Read(strings.NewReader(first))
	require.NoError(t, err)
	require.Equal(t, first, d.String())

	// And once more through the parsed document.
	d2, err := Read(strings.NewReader(d.String()))
	require.NoError(t, err)
	require.Equal(t, first, d2.String())
}

// TestBlockHeader checks the header fields and the global line range.
func TestBlockHeader(t *testing.T) {
	s := sampleDoc().String()
	lines := strings.Split(s, "\n")
	require.Equal(t, "doc_id=sample page=1 block_id=1-1 bbox=2,5,8,15 label=t 1 2", lines[0])

	// Blocks are separated by one blank line.
	require.Equal(t, "", lines[3])
	require.Equal(t, "doc_id=sample page=2 block_id=2-1 bbox=0,0,0,0 label= 3 3", lines[4])
}

// TestPreambleAlignment checks that the ':' separators line up within a
// block: shorter preambles are padded to the longest.
func TestPreambleAlignment(t *testing.T) {
	s := sampleDoc().String()
	lines := strings.Split(s, "\n")
	i1 := strings.Index(lines[1], ":")
	i2 := strings.Index(lines[2], ":")
	require.Equal(t, i1, i2)
	require.True(t, strings.HasSuffix(lines[1][:i1], " "))
}

// TestPreambleOrder checks the canonical attribute order with extras in
// lexicographic order after.
func TestPreambleOrder(t *testing.T) {
	l := NewLine("x", map[string]string{
		"iscore":    "0.50",
		"fonts":     "F-1.0",
		"span_id":   "s0",
		"tag":       "L",
		"line":      "7",
		"bbox":      "0,0,1,1",
		"lang_name": "Aari",
	})
	require.Equal(t,
		"line=7 tag=L span_id=s0 lang_name=Aari fonts=F-1.0 bbox=0,0,1,1 iscore=0.50",
		l.Preamble())
}

// TestParseLine checks the preamble recovery, including values that
// contain spaces.
func TestParseLine(t *testing.T) {
	l, err := ParseLine("line=12 tag=L lang_name=Middle English fonts=F-10.0:  kos bibi")
	require.NoError(t, err)
	require.Equal(t, "  kos bibi", l.Text)
	require.Equal(t, "12", l.Attrs["line"])
	require.Equal(t, 12, l.Lineno())
	require.Equal(t, "L", l.Tag())
	require.Equal(t, "Middle English", l.Attrs["lang_name"])
	require.Equal(t, []Font{{Name: "F", Size: 10}}, l.Fonts())

	// Text may itself contain ':' characters; the preamble ends at the
	// first one.
	l, err = ParseLine("line=1:a:b:c")
	require.NoError(t, err)
	require.Equal(t, "a:b:c", l.Text)

	_, err = ParseLine("no preamble here")
	require.Error(t, err)
}

// TestLineDefaults checks the defaulted accessors.
func TestLineDefaults(t *testing.T) {
	l := NewLine("x", map[string]string{"line": "1"})
	require.Equal(t, "O", l.Tag())
	require.Equal(t, "", l.SpanID())
	require.Empty(t, l.Fonts())
}

// TestFontRoundTrip checks Font parse/format.
func TestFontRoundTrip(t *testing.T) {
	f, err := ParseFont("F-10.0")
	require.NoError(t, err)
	require.Equal(t, Font{Name: "F", Size: 10}, f)
	require.Equal(t, "F-10.0", f.String())

	f, err = ParseFont("Helvetica-9.5")
	require.NoError(t, err)
	require.Equal(t, "Helvetica", f.Name)
	require.Equal(t, 9.5, f.Size)

	_, err = ParseFont("garbage")
	require.Error(t, err)
}

// TestSpans checks span recovery: maximal runs of lines sharing a span
// id, in order of appearance.
func TestSpans(t *testing.T) {
	d := NewDoc()
	b := NewBlock(map[string]string{
		"doc_id": "d", "page": "1", "block_id": "1-1", "bbox": "0,0,0,0", "label": "",
	})
	d.AddBlock(b)
	add := func(n int, spanID string) {
		attrs := map[string]string{"line": strconv.Itoa(n)}
		if spanID != "" {
			attrs["span_id"] = spanID
		}
		b.AddLine(NewLine("x", attrs))
	}
	add(1, "s0")
	add(2, "s0")
	add(3, "")
	add(4, "s1")
	add(5, "s2")

	spans := d.Spans()
	require.Equal(t, []Span{
		{ID: "s0", First: 1, Last: 2},
		{ID: "s1", First: 4, Last: 4},
		{ID: "s2", First: 5, Last: 5},
	}, spans)
}

// TestGzipFileRoundTrip checks transparent .gz reading and writing.
func TestGzipFileRoundTrip(t *testing.T) {
	d := sampleDoc()
	path := t.TempDir() + "/doc.txt.gz"
	require.NoError(t, d.WriteFile(path))

	got, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, d.String(), got.String())
}
