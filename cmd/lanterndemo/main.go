// Command lanterndemo runs a small animation headless and saves the
// final frame as a PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/lantern"
	"github.com/gogpu/lantern/display"
)

func main() {
	var (
		frames  = flag.Int("frames", 60, "number of ticks to run")
		scale   = flag.Int("scale", 4, "integer upscale factor for the output")
		output  = flag.String("output", "demo.png", "output file")
		palName = flag.String("palette", "sweetie16", "palette: sweetie16, pico8 or gameboy")
		verbose = flag.Bool("v", false, "log lifecycle events to stderr")
	)
	flag.Parse()

	if *verbose {
		lantern.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	pal, err := lantern.BuiltinPalette(*palName)
	if err != nil {
		log.Fatalf("Unknown palette: %v", err)
	}

	presenter := display.NewImagePresenter()

	tick := 0
	err = lantern.Run(lantern.Handlers{
		Update: func() { tick++ },
		Render: func() { drawScene(tick) },
	},
		lantern.WithPresenter(presenter),
		lantern.WithPalette(pal),
		lantern.WithTPS(1000),
		lantern.WithFrameLimit(*frames),
	)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	if err := presenter.SavePNG(*output, *scale); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s after %d frames\n", *output, *frames)
}

// drawScene renders one frame of a spinning triangle over a patterned
// backdrop.
func drawScene(tick int) {
	lantern.ClearScreen(lantern.ColorDarkBlue)

	// Checkered floor
	for x := 0; x < lantern.ScreenWidth; x += 16 {
		for y := 128; y < lantern.ScreenHeight; y += 16 {
			col := lantern.ColorGray
			if (x/16+y/16)%2 == 0 {
				col = lantern.ColorDarkGray
			}
			lantern.DrawRect(lantern.Pt(x, y), 16, 16, lantern.Style{FillColor: col})
		}
	}

	// Sun
	lantern.DrawCircle(lantern.Pt(200, 32), 18, lantern.Style{
		FillColor:   lantern.ColorYellow,
		StrokeColor: lantern.ColorOrange,
		StrokeWidth: 2,
	})

	// Spinning triangle
	angle := float64(tick) * math.Pi / 90
	cx, cy, r := 120.0, 70.0, 40.0
	var pts [3]lantern.Point
	for i := range pts {
		a := angle + float64(i)*2*math.Pi/3
		pts[i] = lantern.Pt(int(cx+r*math.Cos(a)), int(cy+r*math.Sin(a)))
	}
	lantern.DrawTriangle(pts[0], pts[1], pts[2], lantern.Style{
		FillColor:   lantern.ColorRed,
		StrokeColor: lantern.ColorWhite,
		StrokeWidth: 1,
	})
}
