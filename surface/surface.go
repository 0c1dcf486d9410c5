// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// Surface is a drawing target. The pix rasterizer emits all of its
// output through these two primitives.
//
// Colors arrive packed in COLORREF layout: blue in bits 16-23, green
// in bits 8-15, red in bits 0-7. The packed value has no alpha
// channel.
//
// Surfaces are NOT thread-safe for drawing. At most one writer may
// issue draw calls against a given surface at a time; the core does no
// locking of its own.
type Surface interface {
	// SetPixel colors the single pixel at (x, y).
	SetPixel(x, y int, c uint32)

	// FillRect fills the w by h block whose top-left corner is (x, y).
	FillRect(x, y, w, h int, c uint32)
}

// Options configures backend construction.
type Options struct {
	// Width and Height are the surface dimensions in pixels.
	Width  int
	Height int

	// Title is used by windowed backends for the window caption.
	// Offscreen backends ignore it.
	Title string
}
