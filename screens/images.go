package screens

import (
	"image"
	"image/color"
	"image/draw"
)

// checkerboard builds a w x h image of alternating cells
func checkerboard(w, h, cell int, a, b color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if cell <= 0 {
		cell = 1
	}
	for y := 0; y < h; y += cell {
		for x := 0; x < w; x += cell {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			draw.Draw(img, image.Rect(x, y, x+cell, y+cell), image.NewUniform(c), image.Point{}, draw.Src)
		}
	}
	return img
}

// framedPanel builds a filled rectangle with a border of the given thickness
func framedPanel(w, h, border int, fill, frame color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(frame), image.Point{}, draw.Src)
	inner := image.Rect(border, border, w-border, h-border)
	if !inner.Empty() {
		draw.Draw(img, inner, image.NewUniform(fill), image.Point{}, draw.Src)
	}
	return img
}
