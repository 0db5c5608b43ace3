/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package reader

import (
	"encoding/xml"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/glottolab/lineate/layout"
)

// maxCharDx is the glyph gap, as a fraction of the average glyph width,
// at or below which adjacent pdfminer glyphs belong to the same token.
const maxCharDx = 0.05

// invalidCharRe matches characters that are not legal in XML 1.0.
// pdfminer output can contain them.
var invalidCharRe = regexp.MustCompile(`[^\x{09}\x{0A}\x{0D}\x{20}-\x{D7FF}\x{E000}-\x{FFFD}]`)

// PdfMiner reads the XML dialect produced by pdfminer's pdf2txt. Glyphs
// inside a textline are merged into tokens while the font and size
// match, the inter-glyph gap stays small and the alphanumeric class is
// unchanged.
type PdfMiner struct {
	pages []Page
}

// NewPdfMiner parses a pdfminer XML document from `r`. Invalid XML
// characters are replaced with U+FFFD before parsing.
func NewPdfMiner(r io.Reader) (*PdfMiner, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "pdfminer read")
	}
	clean := invalidCharRe.ReplaceAllString(string(raw), "�")

	p := &PdfMiner{}
	if err := p.parse(strings.NewReader(clean)); err != nil {
		return nil, err
	}
	p.pages = sortPages(p.pages)
	return p, nil
}

// Pages returns the parsed pages in page-number order.
func (p *PdfMiner) Pages() []Page {
	return p.pages
}

// minerGlyph is one glyph of a textline with its fontspec and box.
type minerGlyph struct {
	text string
	font string
	size float64
	box  layout.BBox
}

func (p *PdfMiner) parse(r io.Reader) error {
	dec := xml.NewDecoder(r)

	var page Page
	var para Para
	var lineGlyphs []minerGlyph
	var cur minerGlyph
	inPage, inText, hasAttrs := false, false, false
	var text strings.Builder

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "pdfminer parse")
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "page":
				id, err := intAttr(el, "id")
				if err != nil {
					return err
				}
				box, err := bboxAttr(el)
				if err != nil {
					return err
				}
				page = Page{ID: id, Width: box.Urx - box.Llx, Height: box.Ury - box.Lly}
				inPage = true
			case "textbox":
				para = Para{}
			case "textline":
				lineGlyphs = nil
			case "text":
				// Glyphs without a bbox are line breaks; they carry no
				// attributes and are dropped below.
				hasAttrs = attr(el, "bbox") != ""
				if hasAttrs {
					box, err := bboxAttr(el)
					if err != nil {
						return err
					}
					size, err := floatAttr(el, "size")
					if err != nil {
						return err
					}
					cur = minerGlyph{font: attr(el, "font"), size: size, box: box}
				}
				inText = true
				text.Reset()
			}
		case xml.CharData:
			if inText {
				text.Write(el)
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "text":
				if hasAttrs && strings.TrimSpace(text.String()) != "" {
					cur.text = text.String()
					lineGlyphs = append(lineGlyphs, cur)
				}
				inText = false
			case "textline":
				if inPage {
					para.Tokens = append(para.Tokens, glyphTokens(lineGlyphs)...)
				}
			case "textbox":
				if inPage {
					page.Paras = append(page.Paras, para)
				}
			case "page":
				p.pages = append(p.pages, page)
				inPage = false
			}
		}
	}
	return nil
}

// glyphTokens merges a textline's glyphs into tokens.
func glyphTokens(glyphs []minerGlyph) []layout.Token {
	var tokens []layout.Token
	var group []minerGlyph
	var lastUrx, lastWidth float64
	var lastFont string
	var lastSize float64
	haveLast := false
	lastAlnum := false

	flush := func() {
		if len(group) == 0 {
			return
		}
		var text strings.Builder
		box := group[0].box
		for _, g := range group {
			text.WriteString(g.text)
			box = box.Union(g.box)
		}
		tokens = append(tokens, layout.NewToken(text.String(), box, group[0].font, 0, layout.Features{}))
		group = nil
	}

	for _, g := range glyphs {
		dx := 0.0
		if haveLast {
			dx = g.box.Llx - lastUrx
		}
		width := g.box.Width()
		avgWidth := width
		if lastWidth != 0 {
			avgWidth = (lastWidth + width) / 2
		}
		alnum := isAlnum(g.text)
		if !haveLast {
			lastAlnum = alnum
		}
		sameRun := len(group) == 0 ||
			(g.font == lastFont && g.size == lastSize &&
				avgWidth != 0 && dx/avgWidth <= maxCharDx &&
				lastAlnum == alnum)
		if !sameRun {
			flush()
		}
		group = append(group, g)
		lastUrx, lastWidth = g.box.Urx, width
		lastFont, lastSize = g.font, g.size
		lastAlnum = alnum
		haveLast = true
	}
	flush()
	return tokens
}

// isAlnum reports whether `s` is non-empty and all letters or digits.
func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// bboxAttr parses a "llx,lly,urx,ury" bbox attribute.
func bboxAttr(el xml.StartElement) (layout.BBox, error) {
	s := attr(el, "bbox")
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return layout.BBox{}, errors.Errorf("element %s: bad bbox attribute %q", el.Name.Local, s)
	}
	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return layout.BBox{}, errors.Errorf("element %s: bad bbox attribute %q", el.Name.Local, s)
		}
		vals[i] = v
	}
	return layout.BBox{Llx: vals[0], Lly: vals[1], Urx: vals[2], Ury: vals[3]}, nil
}
