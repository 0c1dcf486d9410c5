// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides drawing targets for the pix shape core.
//
// Surface is deliberately tiny: the rasterizer in the root package
// only ever needs to color a single pixel or fill an axis-aligned
// block, so that is the whole contract. Everything else a backend
// offers (clearing, snapshots, file export, a window message loop) is
// backend-specific surface area.
//
// # Backends
//
//   - ImageSurface: CPU rendering into an *image.RGBA, with PNG and
//     BMP export. Always available; registered as "image".
//   - WindowSurface: direct GDI drawing into a native window.
//     Windows-only; registered as "window".
//
// # Registry
//
// Backends register by name and priority so callers can either pick
// one explicitly or take the best available:
//
//	s, err := surface.NewByName("image", 800, 600)
//	// or auto-select highest priority:
//	s, err := surface.New(800, 600)
//
// Every registry failure matches ErrUnavailable via errors.Is, so
// callers that just need "a drawing target or an error" test one
// condition.
package surface
