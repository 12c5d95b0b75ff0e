// internal/pdffix/raster.go
package pdffix

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// renderTextImage rasterizes lines of text onto a white canvas. The text
// exists only as pixels, never as glyph runs a PDF extractor could see.
func renderTextImage(width, height int, lines []string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for i, line := range lines {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.Black,
			Face: face,
			Dot:  fixed.P(50, 63+i*50),
		}
		d.DrawString(line)
	}
	return img
}

// writeTextImage renders lines and saves the result as a PNG.
func writeTextImage(path string, width, height int, lines []string) error {
	img := renderTextImage(width, height, lines)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating raster image: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding raster image: %w", err)
	}
	return nil
}
