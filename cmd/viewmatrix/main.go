// Viewmatrix displays a square matrix file as a heat map.
//
// Usage:
//
//	viewmatrix file
//
// Each value is drawn as one pixel, blue for 0 through red for 1.
// Matrices of side 800 or more are downsampled to fit.
// Type q or Escape in the window to exit.
package main

import (
	"os"

	"github.com/heatmatrix/viewmatrix/internal/logging"
	"github.com/heatmatrix/viewmatrix/view"
	"github.com/spf13/cobra"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "viewmatrix file",
		Short: "Display a square matrix file as a heat map",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logging.Setup("info")
			v := view.New(args[0])
			driver.Main(func(s screen.Screen) {
				run(s, v)
			})
		},
	}
}
