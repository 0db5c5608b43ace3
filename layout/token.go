/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package layout

import (
	"fmt"
	"math"
)

// Dehyphenation marker values carried in Features.
const (
	DehyphenationPre  = "pre"
	DehyphenationPost = "post"
)

// Features is the small bag of boolean-ish flags a reader can attach to
// a token. Sub and Sup mark sub/superscripts; Dehyphenation is "pre" or
// "post" when the token is a fragment of a hyphenated word.
type Features struct {
	Sub           bool
	Sup           bool
	Dehyphenation string
}

// Token is a glyph run produced by a reader. Tokens are immutable once
// created; everything downstream of the reader treats them as values.
type Token struct {
	BBox
	Text     string
	Font     string
	Size     float64
	Features Features
}

// NewToken creates a token with its corners rounded to 0.1 pt. If `size`
// is zero or negative the point size is estimated from the box height.
func NewToken(text string, box BBox, font string, size float64, features Features) Token {
	box = BBox{
		Llx: roundTenth(box.Llx),
		Lly: roundTenth(box.Lly),
		Urx: roundTenth(box.Urx),
		Ury: roundTenth(box.Ury),
	}
	if size <= 0 {
		size = box.Ury - box.Lly
	}
	return Token{
		BBox:     box,
		Text:     text,
		Font:     font,
		Size:     size,
		Features: features,
	}
}

// String returns a description of `t`.
func (t Token) String() string {
	return fmt.Sprintf("%s font=%s size=%.1f %q", t.BBox, t.Font, t.Size, t.Text)
}

func (t Token) bbox() BBox {
	return t.BBox
}

func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
