/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package serialize

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// attrOrder is the canonical order of the leading line attributes; any
// further attributes follow lexicographically.
var attrOrder = []string{"line", "tag", "span_id", "lang_name", "lang_code", "fonts"}

func attrRank(k string) int {
	for i, name := range attrOrder {
		if k == name {
			return i
		}
	}
	return len(attrOrder)
}

// Line is one data line of a serialized document: its text plus the
// preamble attributes. The containing block is referenced by id, not by
// pointer; the Doc's maps resolve it.
type Line struct {
	Text    string
	Attrs   map[string]string
	BlockID string
}

// NewLine creates a line with text `text` and a copy of `attrs`.
func NewLine(text string, attrs map[string]string) *Line {
	l := &Line{Text: text, Attrs: map[string]string{}}
	for k, v := range attrs {
		l.Attrs[k] = v
	}
	return l
}

// Lineno returns the global 1-based line number.
func (l *Line) Lineno() int {
	n, _ := strconv.Atoi(l.Attrs["line"])
	return n
}

// Tag returns the IGT tag of `l`, defaulting to "O".
func (l *Line) Tag() string {
	if tag, ok := l.Attrs["tag"]; ok {
		return tag
	}
	return "O"
}

// SpanID returns the IGT span id, or "" when the line is in no span.
func (l *Line) SpanID() string {
	return l.Attrs["span_id"]
}

// Fonts returns the fonts attribute parsed into Font pairs.
func (l *Line) Fonts() []Font {
	s := l.Attrs["fonts"]
	if s == "" {
		return nil
	}
	var fonts []Font
	for _, part := range strings.Split(s, ",") {
		if f, err := ParseFont(part); err == nil {
			fonts = append(fonts, f)
		}
	}
	return fonts
}

// Preamble renders the attribute part of the line, canonically ordered.
func (l *Line) Preamble() string {
	keys := make([]string, 0, len(l.Attrs))
	for k := range l.Attrs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ri, rj := attrRank(keys[i]), attrRank(keys[j])
		if ri != rj {
			return ri < rj
		}
		return keys[i] < keys[j]
	})
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + l.Attrs[k]
	}
	return strings.Join(parts, " ")
}

var (
	lineRe = regexp.MustCompile(`(line.*?):(.*)`)
	keyRe  = regexp.MustCompile(`\S+=`)
)

// ParseLine parses a formatted data line, preamble included. The
// key/value recovery tolerates spaces inside values: a value runs to
// the start of the next key.
func ParseLine(s string) (*Line, error) {
	m := lineRe.FindStringSubmatch(s)
	if m == nil {
		return nil, errors.Errorf("bad line %q", s)
	}
	preamble, text := m[1], m[2]

	attrs := map[string]string{}
	keys := keyRe.FindAllStringIndex(preamble, -1)
	for i, loc := range keys {
		key := strings.TrimSpace(preamble[loc[0] : loc[1]-1])
		end := len(preamble)
		if i+1 < len(keys) {
			end = keys[i+1][0]
		}
		attrs[key] = strings.TrimSpace(preamble[loc[1]:end])
	}
	return &Line{Text: text, Attrs: attrs}, nil
}
