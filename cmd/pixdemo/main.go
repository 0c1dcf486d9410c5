// Command pixdemo draws a small scene with the pix shape core and
// saves it as a PNG or BMP image.
package main

import (
	"flag"
	"image/color"
	"log"
	"strings"

	"github.com/gogpu/pix"
	"github.com/gogpu/pix/surface"
)

func main() {
	var (
		width  = flag.Int("width", 640, "surface width")
		height = flag.Int("height", 480, "surface height")
		output = flag.String("output", "demo.png", "output file (.png or .bmp)")
	)
	flag.Parse()

	s := surface.NewImageSurface(*width, *height)
	defer s.Close()
	s.Clear(color.White)

	if err := drawScene(s); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	var err error
	if strings.HasSuffix(*output, ".bmp") {
		err = s.SaveBMP(*output)
	} else {
		err = s.SavePNG(*output)
	}
	if err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)", *output, *width, *height)
}

func drawScene(s surface.Surface) error {
	if err := drawFan(s); err != nil {
		return err
	}
	return drawRects(s)
}

// drawFan draws a fan of lines of increasing width from a common
// origin, covering the shallow, steep and axis-aligned cases.
func drawFan(s surface.Surface) error {
	origin, err := pix.Coord(320, 240)
	if err != nil {
		return err
	}

	colors := []pix.Color{pix.Red, pix.Green, pix.Blue, pix.Magenta, pix.Cyan}
	for i, c := range colors {
		end, err := pix.Coord(float64(40+i*140), 30)
		if err != nil {
			return err
		}
		line, err := pix.NewLine(s, origin, end, pix.WithColor(c), pix.WithWidth(1+i))
		if err != nil {
			return err
		}
		line.Display()
	}

	// Axis-aligned fast paths.
	right, err := pix.Coord(620, 240)
	if err != nil {
		return err
	}
	down, err := pix.Coord(320, 460)
	if err != nil {
		return err
	}
	accent, err := pix.Hex("FF8800")
	if err != nil {
		return err
	}
	for _, end := range []pix.Coordinate{right, down} {
		line, err := pix.NewLine(s, origin, end, pix.WithColor(accent), pix.WithWidth(4))
		if err != nil {
			return err
		}
		line.Display()
	}
	return nil
}

func drawRects(s surface.Surface) error {
	tl, err := pix.Coord(40, 300)
	if err != nil {
		return err
	}
	outlined, err := pix.NewRect(s, tl, 180, 130,
		pix.WithBorderColor(pix.Black), pix.WithBorderWidth(3))
	if err != nil {
		return err
	}
	outlined.Display()

	tl, err = pix.Coord(420, 300)
	if err != nil {
		return err
	}
	filled, err := pix.NewRect(s, tl, 180, 130,
		pix.WithBorderColor(pix.Blue), pix.WithBorderWidth(2), pix.WithFill(pix.Yellow))
	if err != nil {
		return err
	}
	filled.Display()
	return nil
}
