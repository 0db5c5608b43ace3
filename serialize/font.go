/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package serialize

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

var fontRe = regexp.MustCompile(`([^\-]+)\-([0-9\.\-]+)`)

// Font is a (font name, point size) pair as it appears in a line's
// fonts attribute. Sizes are stored as given and formatted to one
// decimal.
type Font struct {
	Name string
	Size float64
}

// String formats `f` as "name-size" with one decimal of size.
func (f Font) String() string {
	return fmt.Sprintf("%s-%.1f", f.Name, f.Size)
}

// ParseFont parses a "name-size" pair.
func ParseFont(s string) (Font, error) {
	m := fontRe.FindStringSubmatch(s)
	if m == nil {
		return Font{}, errors.Errorf("bad font %q", s)
	}
	size, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Font{}, errors.Errorf("bad font size %q", s)
	}
	return Font{Name: m[1], Size: size}, nil
}
