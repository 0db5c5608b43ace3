/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package reader

import (
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/glottolab/lineate/layout"
)

// Tetml reads the TETML dialect produced by PDFlib TET. Every Para
// becomes one paragraph; every Word contributes one token per Box
// (dehyphenated words carry two or more boxes, and layout matters more
// here than word identity, so the boxes stay separate tokens).
type Tetml struct {
	pages []Page
}

// NewTetml parses a TETML document from `r`.
func NewTetml(r io.Reader) (*Tetml, error) {
	t := &Tetml{}
	if err := t.parse(r); err != nil {
		return nil, err
	}
	t.pages = sortPages(t.pages)
	return t, nil
}

// Pages returns the parsed pages in page-number order.
func (t *Tetml) Pages() []Page {
	return t.pages
}

// tetGlyph is one Glyph element: its attributes plus character data.
type tetGlyph struct {
	text   string
	font   string
	size   string
	sub    string
	sup    string
	dehyph string
}

// parse walks the element stream, ignoring namespaces by matching local
// names only.
func (t *Tetml) parse(r io.Reader) error {
	dec := xml.NewDecoder(r)

	var page Page
	var para Para
	var box layout.BBox
	var glyphs []tetGlyph
	var inGlyph bool
	var glyphText strings.Builder
	inPage := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "tetml parse")
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "Page":
				number, err := intAttr(el, "number")
				if err != nil {
					return err
				}
				width, err := floatAttr(el, "width")
				if err != nil {
					return err
				}
				height, err := floatAttr(el, "height")
				if err != nil {
					return err
				}
				page = Page{ID: number, Width: width, Height: height}
				inPage = true
			case "Para":
				para = Para{}
			case "Box":
				llx, err := floatAttr(el, "llx")
				if err != nil {
					return err
				}
				lly, err := floatAttr(el, "lly")
				if err != nil {
					return err
				}
				urx, err := floatAttr(el, "urx")
				if err != nil {
					return err
				}
				ury, err := floatAttr(el, "ury")
				if err != nil {
					return err
				}
				box = layout.BBox{Llx: llx, Lly: lly, Urx: urx, Ury: ury}
				glyphs = nil
			case "Glyph":
				g := tetGlyph{
					font:   attr(el, "font"),
					size:   attr(el, "size"),
					sub:    attr(el, "sub"),
					sup:    attr(el, "sup"),
					dehyph: attr(el, "dehyphenation"),
				}
				glyphs = append(glyphs, g)
				inGlyph = true
				glyphText.Reset()
			}
		case xml.CharData:
			if inGlyph {
				glyphText.Write(el)
			}
		case xml.EndElement:
			switch el.Name.Local {
			case "Glyph":
				glyphs[len(glyphs)-1].text = glyphText.String()
				inGlyph = false
			case "Box":
				if inPage {
					para.Tokens = append(para.Tokens, boxToken(box, glyphs))
				}
			case "Para":
				if inPage {
					page.Paras = append(page.Paras, para)
				}
			case "Page":
				t.pages = append(t.pages, page)
				inPage = false
			}
		}
	}
	return nil
}

// boxToken builds one token from a Box and its glyphs. The token's font
// and sub/superscript flags follow the most common per-glyph values.
func boxToken(box layout.BBox, glyphs []tetGlyph) layout.Token {
	var text strings.Builder
	for _, g := range glyphs {
		text.WriteString(g.text)
	}
	var features layout.Features
	boxText := text.String()
	if len(glyphs) > 0 && glyphs[len(glyphs)-1].dehyph == layout.DehyphenationPre {
		boxText += "-"
		features.Dehyphenation = layout.DehyphenationPre
	} else if len(glyphs) > 0 && glyphs[0].dehyph == layout.DehyphenationPost {
		features.Dehyphenation = layout.DehyphenationPost
	}

	fontPairs := make([][2]string, len(glyphs))
	flagPairs := make([][2]string, len(glyphs))
	for i, g := range glyphs {
		fontPairs[i] = [2]string{g.font, g.size}
		flagPairs[i] = [2]string{g.sub, g.sup}
	}
	font := mostCommon(fontPairs)
	flags := mostCommon(flagPairs)
	if flags[0] != "" {
		features.Sub = true
	}
	if flags[1] != "" {
		features.Sup = true
	}

	return layout.NewToken(boxText, box, font[0], 0, features)
}

func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

func floatAttr(el xml.StartElement, name string) (float64, error) {
	s := attr(el, name)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("element %s: bad numeric attribute %s=%q", el.Name.Local, name, s)
	}
	return v, nil
}

func intAttr(el xml.StartElement, name string) (int, error) {
	s := attr(el, name)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("element %s: bad integer attribute %s=%q", el.Name.Local, name, s)
	}
	return v, nil
}
