package main

import (
	"9fans.net/go/draw"
	"github.com/heatmatrix/viewmatrix/matrix"
	"github.com/rs/zerolog/log"
)

// A surface draws runs on a draw.Image.
// Each color is a 1×1 replicated image, allocated on first use and kept
// for later redraws; a gradient has at most a few hundred colors.
type surface struct {
	d     *draw.Display
	dst   *draw.Image
	cur   *draw.Image
	cache map[matrix.Color]*draw.Image
}

func newSurface(d *draw.Display) *surface {
	return &surface{d: d, cache: make(map[matrix.Color]*draw.Image)}
}

// pixColor returns c as an opaque draw.Color, 0xRRGGBBAA.
func pixColor(c matrix.Color) draw.Color {
	return draw.Color(c.Packed()<<8 | 0xFF)
}

// span returns the rectangle covering columns x0 through x1 of row,
// relative to the top-left corner of r.
func span(r draw.Rectangle, row, x0, x1 int) draw.Rectangle {
	return draw.Rect(r.Min.X+x0, r.Min.Y+row, r.Min.X+x1+1, r.Min.Y+row+1)
}

func (s *surface) SetColor(c matrix.Color) {
	if i, ok := s.cache[c]; ok {
		s.cur = i
		return
	}
	i, err := s.d.AllocImage(draw.Rect(0, 0, 1, 1), draw.RGB24, true, pixColor(c))
	if err != nil {
		log.Error().Err(err).Uint32("color", c.Packed()).Msg("could not allocate color")
		s.cur = s.d.Black
		return
	}
	s.cache[c] = i
	s.cur = i
}

func (s *surface) HLine(row, x0, x1 int) {
	s.dst.Draw(span(s.dst.R, row, x0, x1), s.cur, nil, draw.ZP)
}

func (s *surface) free() {
	for c, i := range s.cache {
		i.Free()
		delete(s.cache, c)
	}
}
