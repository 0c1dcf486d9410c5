// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build windows

package surface

import (
	"fmt"

	"github.com/gogpu/pix/internal/win32"
)

// WindowSurface draws directly into the client area of a native window
// through GDI. Nothing is buffered: every SetPixel and FillRect is
// immediately visible, and content repaints only when redrawn.
//
// The creating goroutine is pinned to its OS thread; RunMessageLoop
// must run on that same goroutine.
type WindowSurface struct {
	win    *win32.Window
	width  int
	height int
}

// NewWindowSurface creates a visible native window and returns a
// surface drawing into its client area. When the window cannot be
// created the error matches ErrUnavailable.
func NewWindowSurface(opts Options) (*WindowSurface, error) {
	title := opts.Title
	if title == "" {
		title = "pix"
	}
	w, err := win32.CreateWindow(title, opts.Width, opts.Height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return &WindowSurface{win: w, width: opts.Width, height: opts.Height}, nil
}

// Width returns the requested client width.
func (s *WindowSurface) Width() int {
	return s.width
}

// Height returns the requested client height.
func (s *WindowSurface) Height() int {
	return s.height
}

// SetPixel colors the single pixel at (x, y).
func (s *WindowSurface) SetPixel(x, y int, c uint32) {
	s.win.SetPixel(x, y, c)
}

// FillRect fills the w by h block whose top-left corner is (x, y).
func (s *WindowSurface) FillRect(x, y, w, h int, c uint32) {
	s.win.FillRect(x, y, w, h, c)
}

// RunMessageLoop pumps window messages until the window closes. It
// blocks, so issue draw calls before entering the loop.
func (s *WindowSurface) RunMessageLoop() {
	s.win.MessageLoop()
}

var _ Surface = (*WindowSurface)(nil)

// Close destroys the window. Idempotent.
func (s *WindowSurface) Close() error {
	return s.win.Destroy()
}

func init() {
	Register("window", 100, func(opts Options) (Surface, error) {
		return NewWindowSurface(opts)
	}, nil)
}
