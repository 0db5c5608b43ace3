/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package textimport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glottolab/lineate/serialize"
)

// TestConvert checks paragraph blocking, line numbering and span tags.
func TestConvert(t *testing.T) {
	text := "kos bibi nay\nwater green stand\n\nplain prose here"
	spans := "1 2 L G"

	fd, err := Convert("mydoc", text, spans)
	require.NoError(t, err)

	blocks := fd.Blocks()
	require.Len(t, blocks, 2)
	require.Equal(t, "b1", blocks[0].BlockID())
	require.Equal(t, "b2", blocks[1].BlockID())
	require.Equal(t, 1, blocks[0].Page())
	require.Equal(t, "mydoc", blocks[0].DocID())

	lines := fd.Lines()
	require.Len(t, lines, 3)
	require.Equal(t, "kos bibi nay", lines[0].Text)
	require.Equal(t, "L", lines[0].Tag())
	require.Equal(t, "s0", lines[0].SpanID())
	require.Equal(t, "G", lines[1].Tag())
	require.Equal(t, "s0", lines[1].SpanID())
	require.Equal(t, "O", lines[2].Tag()) // untagged default
	require.Equal(t, "", lines[2].SpanID())
	require.Equal(t, "0,0,0,0", lines[2].Attrs["bbox"])

	spansOut := fd.Spans()
	require.Equal(t, []serialize.Span{{ID: "s0", First: 1, Last: 2}}, spansOut)
}

// TestConvertBlankSpanTarget checks that a span pointing at a blank line
// is skipped rather than failing the conversion.
func TestConvertBlankSpanTarget(t *testing.T) {
	text := "one\n\ntwo"
	fd, err := Convert("d", text, "2 2 L")
	require.NoError(t, err)
	for _, l := range fd.Lines() {
		require.Equal(t, "", l.SpanID())
	}
}

// TestConvertCollapsesBlankRuns checks that runs of blank lines count as
// one block separator.
func TestConvertCollapsesBlankRuns(t *testing.T) {
	fd, err := Convert("d", "a\n\n\n\nb", "")
	require.NoError(t, err)
	require.Len(t, fd.Blocks(), 2)
	require.Len(t, fd.Lines(), 2)
}

// TestReadAndConvertEncoding checks decoding of a non-UTF-8 input file.
func TestReadAndConvertEncoding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "latin.txt")
	// "café" in ISO 8859-1.
	require.NoError(t, os.WriteFile(path, []byte{'c', 'a', 'f', 0xe9}, 0o644))

	_, err := ReadAndConvert(path, "", "")
	require.Error(t, err) // not valid UTF-8

	fd, err := ReadAndConvert(path, "", "latin1")
	require.NoError(t, err)
	require.Contains(t, fd.Lines()[0].Text, "café")

	_, err = ReadAndConvert(path, "", "no-such-encoding")
	require.Error(t, err)
}

// TestConvertRoundTrip checks that the emitted document re-parses.
func TestConvertRoundTrip(t *testing.T) {
	fd, err := Convert("d", "a\nb\n\nc", "1 2 L G")
	require.NoError(t, err)
	out := fd.String()

	back, err := serialize.Read(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, out, back.String())
}
