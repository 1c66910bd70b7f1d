package runlen

import (
	"image"
	"image/draw"

	"github.com/heatmatrix/viewmatrix/matrix"
)

// An ImageSurface draws runs into an image.
// Cell (0, 0) lands on the Origin pixel of Dst.
// Spans falling outside Dst's bounds are clipped.
type ImageSurface struct {
	Dst    draw.Image
	Origin image.Point

	src image.Uniform
}

// NewImageSurface returns a Surface drawing into dst with cell (0, 0) at origin.
func NewImageSurface(dst draw.Image, origin image.Point) *ImageSurface {
	s := &ImageSurface{Dst: dst, Origin: origin}
	s.src.C = matrix.Color{}
	return s
}

func (s *ImageSurface) SetColor(c matrix.Color) {
	s.src.C = c
}

func (s *ImageSurface) HLine(row, x0, x1 int) {
	r := image.Rect(x0, row, x1+1, row+1).Add(s.Origin)
	draw.Draw(s.Dst, r, &s.src, image.Point{}, draw.Src)
}
