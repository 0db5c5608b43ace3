/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package textimport converts a plain text file, plus an optional IGT
// span sidecar, into the serialized document format with a synthetic
// single-page layout. It exists for corpora where no PDF layout data is
// available.
package textimport

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/glottolab/lineate/common"
	"github.com/glottolab/lineate/serialize"
)

var (
	newlineRe    = regexp.MustCompile(`\r\n|\n`)
	multiBlankRe = regexp.MustCompile(`(\r\n|\n){2,}`)
	blankRe      = regexp.MustCompile(`^\s*$`)
)

// lineMark is the tag and span id assigned to one emitted line.
type lineMark struct {
	tag    string
	spanID string
}

// Convert builds a serialized document from `text`. `spanText`, when
// non-empty, holds one span per line as "start stop tag1 ... tagN"
// where start and stop are 1-based line numbers of the original text,
// blank lines included.
func Convert(docID, text, spanText string) (*serialize.Doc, error) {
	// Map original line numbers onto emitted line numbers, which skip
	// blank lines.
	pre2post := map[int]int{}
	woIndex := 1
	for wIndex, line := range newlineRe.Split(text, -1) {
		if !blankRe.MatchString(line) {
			pre2post[wIndex+1] = woIndex
			woIndex++
		}
	}

	marks := map[int]lineMark{}
	if spanText != "" {
		for sIndex, line := range strings.Split(spanText, "\n") {
			if len(line) == 0 {
				continue
			}
			parts := strings.Fields(line)
			if len(parts) < 3 {
				return nil, errors.Errorf("bad span line %q", line)
			}
			start, err := strconv.Atoi(parts[0])
			if err != nil {
				return nil, errors.Errorf("bad span start in %q", line)
			}
			stop, err := strconv.Atoi(parts[1])
			if err != nil {
				return nil, errors.Errorf("bad span stop in %q", line)
			}
			tags := parts[2:]
			for i := start; i <= stop; i++ {
				num, ok := pre2post[i]
				if !ok {
					common.Log.Warnf("span line %d is a blank line in the document; "+
						"check the line numbers in the span file, skipping the problem line", i)
					continue
				}
				if i-start >= len(tags) {
					return nil, errors.Errorf("span %q names more lines than tags", line)
				}
				marks[num] = lineMark{tag: tags[i-start], spanID: "s" + strconv.Itoa(sIndex)}
			}
		}
	}

	fd := serialize.NewDoc()
	text = multiBlankRe.ReplaceAllString(text, "\n\n")
	index := 1
	for bIndex, para := range strings.Split(text, "\n\n") {
		var lines []*serialize.Line
		for _, raw := range newlineRe.Split(para, -1) {
			attrs := map[string]string{
				"line": strconv.Itoa(index),
				"bbox": "0,0,0,0",
			}
			if m, ok := marks[index]; ok {
				attrs["tag"] = m.tag
				attrs["span_id"] = m.spanID
			}
			lines = append(lines, serialize.NewLine(raw, attrs))
			index++
		}
		block := serialize.NewBlock(map[string]string{
			"doc_id":   docID,
			"page":     "1",
			"block_id": "b" + strconv.Itoa(bIndex+1),
		})
		fd.AddBlock(block)
		for _, l := range lines {
			block.AddLine(l)
		}
	}
	return fd, nil
}

// ReadAndConvert reads the text file at `path` and converts it,
// decoding with the named IANA `encoding` (empty means UTF-8). The span
// sidecar, when given, is decoded the same way.
func ReadAndConvert(path, igtPath, encoding string) (*serialize.Doc, error) {
	text, err := readTextFile(path, encoding)
	if err != nil {
		return nil, err
	}
	spanText := ""
	if igtPath != "" {
		spanText, err = readTextFile(igtPath, encoding)
		if err != nil {
			return nil, err
		}
	}
	name := strings.SplitN(filepath.Base(path), ".", 2)[0]
	return Convert(name, text, spanText)
}

// readTextFile reads `path` and decodes it from `encoding`.
func readTextFile(path, encoding string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %q", path)
	}
	if encoding == "" || strings.EqualFold(encoding, "utf-8") {
		if !utf8.Valid(raw) {
			return "", errors.Errorf(
				"%s is not valid UTF-8; specify the encoding with --encoding", path)
		}
		return string(raw), nil
	}
	enc, err := ianaindex.IANA.Encoding(encoding)
	if err != nil || enc == nil {
		return "", errors.Errorf("unknown encoding %q", encoding)
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", errors.Wrapf(err, "decode %q as %s", path, encoding)
	}
	return string(decoded), nil
}
