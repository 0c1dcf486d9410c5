// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
)

// ImageSurface is a CPU surface backed by an *image.RGBA. It is the
// default backend for offscreen rendering and for tests.
//
// Writes outside the surface bounds are clipped silently. Packed
// COLORREF values decode with alpha forced to opaque, since the packed
// format carries no alpha channel.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(color.White)
//	s.FillRect(100, 100, 50, 50, 0x0000FF) // red block
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given
// dimensions. Dimensions below 1 are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	return &ImageSurface{
		width:  width,
		height: height,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewImageSurfaceFromImage creates a surface backed by an existing
// image. Drawing writes into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	bounds := img.Bounds()
	return &ImageSurface{
		width:  bounds.Dx(),
		height: bounds.Dy(),
		img:    img,
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// unpack converts a packed COLORREF value to an opaque RGBA color.
func unpack(c uint32) color.RGBA {
	return color.RGBA{
		R: uint8(c),
		G: uint8(c >> 8),
		B: uint8(c >> 16),
		A: 0xFF,
	}
}

// SetPixel colors the single pixel at (x, y).
func (s *ImageSurface) SetPixel(x, y int, c uint32) {
	if s.closed || x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.img.SetRGBA(x, y, unpack(c))
}

// FillRect fills the w by h block whose top-left corner is (x, y).
func (s *ImageSurface) FillRect(x, y, w, h int, c uint32) {
	if s.closed || w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, &image.Uniform{unpack(c)}, image.Point{}, draw.Src)
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
}

// Snapshot returns the current surface contents as an RGBA image. The
// returned image is a copy; modifications to it do not affect the
// surface.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.img.Bounds())
	copy(out.Pix, s.img.Pix)
	return out
}

// SavePNG writes the surface contents to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	return s.save(path, func(f *os.File) error { return png.Encode(f, s.img) })
}

// SaveBMP writes the surface contents to a BMP file.
func (s *ImageSurface) SaveBMP(path string) error {
	return s.save(path, func(f *os.File) error { return bmp.Encode(f, s.img) })
}

func (s *ImageSurface) save(path string, encode func(*os.File) error) error {
	if s.closed {
		return fmt.Errorf("surface: save %s: surface is closed", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Close releases the surface. After Close, draw calls are ignored and
// saves fail. Close is idempotent; multiple calls are safe.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}

func init() {
	Register("image", 10, func(opts Options) (Surface, error) {
		return NewImageSurface(opts.Width, opts.Height), nil
	}, nil)
}
