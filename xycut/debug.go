/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package xycut

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// writeDebugImage renders the page density bitmap with zone outlines and
// cut-path labels to `<dir>/<docID>-page<id>.png`. The image uses image
// coordinates, so the page is flipped vertically to put y=0 at the top.
func writeDebugImage(dir, docID string, pageID int, bm *bitmap, zones []zone) error {
	img := image.NewRGBA(image.Rect(0, 0, bm.w, bm.h))

	maxDensity := 0.0
	for _, row := range bm.cells {
		for _, v := range row {
			if v > maxDensity {
				maxDensity = v
			}
		}
	}
	if maxDensity == 0 {
		maxDensity = 1
	}
	for y := 0; y < bm.h; y++ {
		for x := 0; x < bm.w; x++ {
			g := uint8(255 * bm.cells[y][x] / maxDensity)
			img.Set(x, bm.h-1-y, color.RGBA{g, g, 0, 255})
		}
	}

	outline := color.RGBA{255, 255, 255, 255}
	for _, z := range zones {
		drawRect(img, bm.h, z.zoneRect, outline)
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{0, 255, 255, 255}),
		Face: basicfont.Face7x13,
	}
	for _, z := range zones {
		label := z.path
		if label == "" {
			label = "*"
		}
		d.Dot = fixed.P(z.llx+2, bm.h-1-z.ury+basicfont.Face7x13.Ascent+1)
		d.DrawString(label)
	}

	name := filepath.Join(dir, fmt.Sprintf("%s-page%d.png", docID, pageID))
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// drawRect draws the outline of `z` on `img`, flipping y.
func drawRect(img *image.RGBA, h int, z zoneRect, c color.RGBA) {
	for x := z.llx; x < z.urx; x++ {
		img.Set(x, h-1-z.lly, c)
		img.Set(x, h-1-(z.ury-1), c)
	}
	for y := z.lly; y < z.ury; y++ {
		img.Set(z.llx, h-1-y, c)
		img.Set(z.urx-1, h-1-y, c)
	}
}
