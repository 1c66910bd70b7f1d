// Viewmatrix9 displays a square matrix file as a heat map
// in a Plan 9 draw window (devdraw under plan9port).
//
// Usage:
//
//	viewmatrix9 file
//
// Type q or Delete in the window to exit.
package main // import "github.com/heatmatrix/viewmatrix/cmd/viewmatrix9"

import (
	"fmt"
	"os"

	"9fans.net/go/draw"
	"github.com/heatmatrix/viewmatrix/internal/logging"
	"github.com/heatmatrix/viewmatrix/view"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	title   = "View Matrix"
	minSide = 64
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "viewmatrix9 file",
		Short: "Display a square matrix file as a heat map in a Plan 9 draw window",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logging.Setup("info")
			display(view.New(args[0]))
		},
	}
}

func winsize(v *view.Viewer) string {
	side := max(v.Side(), minSide)
	return fmt.Sprintf("%dx%d", side, side)
}

func display(v *view.Viewer) {
	d, err := draw.Init(nil, "", title, winsize(v))
	if err != nil {
		log.Fatal().Err(err).Msg("could not open display")
	}
	mc := d.InitMouse()
	kc := d.InitKeyboard()

	s := newSurface(d)
	redraw(d, s, v)
	for {
		select {
		case mc.Mouse = <-mc.C:

		case <-mc.Resize:
			if err := d.Attach(draw.RefNone); err != nil {
				log.Fatal().Err(err).Msg("could not reattach to window")
			}
			redraw(d, s, v)

		case r := <-kc.C:
			if r == 'q' || r == 0x7F {
				s.free()
				d.Close()
				return
			}
		}
	}
}

func redraw(d *draw.Display, s *surface, v *view.Viewer) {
	screen := d.ScreenImage
	screen.Draw(screen.R, d.White, nil, draw.ZP)
	s.dst = screen
	n := v.Render(s)
	log.Trace().Int("fills", n).Msg("redraw")
	if err := d.Flush(); err != nil {
		log.Error().Err(err).Msg("flush")
	}
}
