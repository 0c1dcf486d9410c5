// Package pix is a minimal 2D pixel-drawing layer.
//
// # Overview
//
// pix turns geometric descriptions (coordinates, lines, rectangles,
// colors) into pixel-level drawing commands issued against a drawing
// surface. Shapes are plain value objects bound to a surface at
// construction; calling Display recomputes and emits every pixel, so
// there is no scene graph and no retained state between displays.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/pix"
//		"github.com/gogpu/pix/surface"
//	)
//
//	s := surface.NewImageSurface(640, 480)
//	defer s.Close()
//
//	start, _ := pix.Coord(10, 10)
//	end, _ := pix.Coord(200, 150)
//	line, err := pix.NewLine(s, start, end, pix.WithColor(pix.Red), pix.WithWidth(3))
//	if err != nil {
//		// invalid input, reported as *pix.ValidationError
//	}
//	line.Display()
//
//	s.SavePNG("out.png")
//
// # Rasterization
//
// Axis-aligned lines are drawn with a single rectangle fill (the fast
// path). Everything else goes through a Bresenham walk where the band
// center at each step comes from the geometric line equation, so
// rounding error never accumulates along the segment. Lines wider than
// one pixel are thickened by offsetting pixels horizontally for steep
// segments and vertically for shallow ones; this is a cheap heuristic,
// not true perpendicular stroking.
//
// # Colors
//
// Colors are validated 8-bit RGB(A) values. The packed form handed to
// surfaces uses COLORREF layout (blue<<16 | green<<8 | red) and carries
// no alpha channel; an alpha supplied at construction is kept for
// introspection only.
//
// # Coordinate System
//
// Origin (0,0) at the top-left, X increasing right, Y increasing down.
// Coordinates are screen-space and therefore non-negative.
//
// # Surfaces
//
// Drawing targets implement surface.Surface (SetPixel and FillRect).
// The surface package ships a CPU backend over *image.RGBA and, on
// Windows, a GDI window backend. Custom backends register through
// surface.Register.
package pix
