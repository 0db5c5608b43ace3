/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package lineate assembles analyzed page layouts into the serialized
// line-oriented document format, respacing each block so interlinear
// glosses keep their column alignment.
package lineate

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/glottolab/lineate/layout"
	"github.com/glottolab/lineate/respace"
	"github.com/glottolab/lineate/serialize"
)

// Serialize converts an analyzed document into its serialized form.
// Line numbers are global and 1-based; columns are normalized against
// the document's minimum left coordinate.
func Serialize(doc *layout.Document) *serialize.Doc {
	fd := serialize.NewDoc()
	lineNo := 1

	lMargin := 0.0
	first := true
	for _, page := range doc.Pages {
		for _, t := range page.Tokens() {
			if first || t.Llx < lMargin {
				lMargin = t.Llx
				first = false
			}
		}
	}

	for _, page := range doc.Pages {
		for _, blk := range page.Blocks() {
			fb := serialize.NewBlock(map[string]string{
				"doc_id":   doc.ID,
				"page":     strconv.Itoa(page.ID),
				"block_id": fmt.Sprintf("%d-%d", page.ID, blk.ID),
				"bbox":     formatBBox(blk.BBox),
				"label":    blk.Label,
			})
			fd.AddBlock(fb)

			lines := blk.Lines()
			for i, rl := range respace.Block(blk, -lMargin) {
				attrs := map[string]string{
					"line":  strconv.Itoa(lineNo + i),
					"fonts": lineFonts(lines[i]),
					"bbox":  formatBBox(lines[i].BBox),
				}
				if rl.Score != nil {
					attrs["iscore"] = fmt.Sprintf("%.2f", *rl.Score)
				}
				fb.AddLine(serialize.NewLine(rl.Text, attrs))
			}

			lineNo += len(lines)
		}
	}
	return fd
}

// lineFonts renders the sorted set of font-size pairs over a line's
// tokens.
func lineFonts(line *layout.Line) string {
	set := map[string]bool{}
	for _, t := range line.Tokens() {
		set[serialize.Font{Name: t.Font, Size: t.Size}.String()] = true
	}
	fonts := make([]string, 0, len(set))
	for f := range set {
		fonts = append(fonts, f)
	}
	sort.Strings(fonts)
	return strings.Join(fonts, ",")
}

// formatBBox renders a box as comma-separated shortest-form floats.
func formatBBox(b layout.BBox) string {
	return fmt.Sprintf("%s,%s,%s,%s",
		formatFloat(b.Llx), formatFloat(b.Lly), formatFloat(b.Urx), formatFloat(b.Ury))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// DocIDFromPath derives a document id from an input path: the base name
// minus any ".gz" suffix and extension.
func DocIDFromPath(path string) string {
	bn := filepath.Base(path)
	bn = strings.TrimSuffix(bn, ".gz")
	return strings.TrimSuffix(bn, filepath.Ext(bn))
}
