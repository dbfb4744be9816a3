package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/textatlas/textatlas/geom"
)

// imagePage is a minimal atlas.PixelWriter backed by an *image.RGBA.
// Pixel writing and PNG encoding are both external-collaborator
// concerns the core text-atlas allocator never touches directly (see
// SPEC_FULL.md §1); this is the demo's own stand-in for a real GPU or
// software rasterizer backend.
type imagePage struct {
	img *image.RGBA
}

func newImagePage(size geom.Size) *imagePage {
	return &imagePage{img: image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))}
}

func (p *imagePage) Size() geom.Size {
	b := p.img.Bounds()
	return geom.Size{Width: b.Dx(), Height: b.Dy()}
}

func (p *imagePage) SetPixel(x, y int, r, g, b, a uint8) {
	p.img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: a})
}

func (p *imagePage) Write(pixels []byte, rect geom.Rect) {
	for row := 0; row < rect.Height; row++ {
		for col := 0; col < rect.Width; col++ {
			i := (row*rect.Width + col) * 4
			if i+3 >= len(pixels) {
				continue
			}
			p.SetPixel(rect.X+col, rect.Y+row, pixels[i], pixels[i+1], pixels[i+2], pixels[i+3])
		}
	}
}

func (p *imagePage) Commit() {}

func (p *imagePage) savePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, p.img)
}
