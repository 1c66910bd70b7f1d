package main

import (
	"image"
	"image/draw"

	"github.com/heatmatrix/viewmatrix/runlen"
	"github.com/heatmatrix/viewmatrix/view"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

const title = "View Matrix"

// minSide is the smallest window side, used for empty matrices.
const minSide = 64

// windowSize returns the initial window size for v.
func windowSize(v *view.Viewer) image.Point {
	p := v.Size()
	return image.Pt(max(p.X, minSide), max(p.Y, minSide))
}

func run(s screen.Screen, v *view.Viewer) {
	sz := windowSize(v)
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Width:  sz.X,
		Height: sz.Y,
		Title:  title,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not create window")
	}
	defer w.Release()

	var b screen.Buffer
	defer func() {
		if b != nil {
			b.Release()
		}
	}()

	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}

		case key.Event:
			if e.Direction == key.DirPress && (e.Code == key.CodeEscape || e.Rune == 'q') {
				return
			}

		case size.Event:
			if b != nil {
				b.Release()
				b = nil
			}
			if e.WidthPx == 0 || e.HeightPx == 0 {
				break
			}
			b, err = s.NewBuffer(e.Size())
			if err != nil {
				log.Fatal().Err(err).Msg("could not allocate window buffer")
			}
			w.Send(paint.Event{})

		case paint.Event:
			if b == nil {
				break
			}
			n := paintBuffer(b, v)
			log.Trace().Int("fills", n).Msg("paint")
			w.Upload(image.Point{}, b, b.Bounds())
			w.Publish()

		case error:
			log.Error().Err(e).Msg("window event")
		}
	}
}

// paintBuffer clears b to white and draws v on it, returning the number of fills.
func paintBuffer(b screen.Buffer, v *view.Viewer) int {
	dst := b.RGBA()
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	return v.Render(runlen.NewImageSurface(dst, dst.Bounds().Min))
}
